package account

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/traineme-api/internal/auth"
	"github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/user"
)

type Login struct {
	users  user.Repository
	hasher *auth.Hasher
	tokens *auth.TokenIssuer
}

func NewLogin(
	users user.Repository,
	hasher *auth.Hasher,
	tokens *auth.TokenIssuer,
) *Login {
	return &Login{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Execute answers unknown emails and wrong passwords identically.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*Result, error) {

	u, err := uc.users.GetUserByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.hasher.CompareDummy(password)
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := uc.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, exp, err := uc.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	return &Result{User: u, Token: token, ExpiresAt: exp}, nil
}
