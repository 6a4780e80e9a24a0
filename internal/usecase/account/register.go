package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/auth"
	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/user"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

var validate = validator.New()

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	Phone     string
}

// Result is returned by register and login.
type Result struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// DomainCheck reports whether an email's domain can receive mail.
type DomainCheck func(ctx context.Context, email string) bool

type Register struct {
	users       user.Repository
	hasher      *auth.Hasher
	tokens      *auth.TokenIssuer
	audit       *audit.Dispatcher
	checkDomain DomainCheck
}

// NewRegister builds the use case. checkDomain may be nil.
func NewRegister(
	users user.Repository,
	hasher *auth.Hasher,
	tokens *auth.TokenIssuer,
	audit *audit.Dispatcher,
	checkDomain DomainCheck,
) *Register {
	return &Register{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*Result, error) {

	email := user.NormalizeEmail(in.Email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, user.ErrInvalidEmail
	}
	if len(in.Password) < user.MinPasswordLength {
		return nil, user.ErrWeakPassword
	}
	if len(in.Password) > user.MaxPasswordLength {
		return nil, user.ErrLongPassword
	}

	role, err := user.ParseRole(in.Role)
	if err != nil {
		return nil, user.ErrInvalidRole
	}

	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	if firstName == "" || lastName == "" {
		return nil, errMissingName
	}

	if uc.checkDomain != nil && !uc.checkDomain(ctx, email) {
		return nil, user.ErrUnreachableDomain
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
	}

	if err := uc.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, err
	}

	token, exp, err := uc.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   audit.EntityUser,
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role},
	})

	return &Result{User: u, Token: token, ExpiresAt: exp}, nil
}
