package user

import "github.com/BruksfildServices01/traineme-api/internal/httperr"

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
)

var (
	ErrDuplicateEmail     = httperr.Duplicate("duplicate_email", "An account with this email already exists.")
	ErrInvalidCredentials = httperr.Unauthorized("invalid_credentials", "Invalid email or password.")
	ErrUserNotFound       = httperr.NotFound("user_not_found", "User not found.")
	ErrInvalidRole        = httperr.Validation("invalid_role", "Role must be USER or TRAINER.")
	ErrWeakPassword       = httperr.Validation("weak_password", "Password must be at least 6 characters.")
	ErrLongPassword       = httperr.Validation("password_too_long", "Password must be at most 72 bytes.")
	ErrInvalidEmail       = httperr.Validation("invalid_email", "Email address is not valid.")
	ErrUnreachableDomain  = httperr.Validation("email_domain_unreachable", "Email domain does not accept mail.")
)
