package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/auth"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

const (
	ContextUserID   = httperr.ContextUserID
	ContextUserRole = "userRole"
)

var (
	errMissingToken = httperr.Unauthorized("invalid_token", "Authentication required.")
	errInvalidToken = httperr.Unauthorized("invalid_token", "Invalid or expired token.")
)

func AuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Respond(c, "auth", errMissingToken)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Respond(c, "auth", errInvalidToken)
			return
		}

		id, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Respond(c, "auth", errInvalidToken)
			return
		}

		c.Set(ContextUserID, id.UserID)
		c.Set(ContextUserRole, id.Role)

		c.Next()
	}
}

// RequireRole lets through only callers holding one of roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		r, ok := role.(models.Role)
		if !ok || !allowed[r] {
			httperr.Respond(c, "require_role", httperr.ErrForbidden)
			return
		}
		c.Next()
	}
}

// Identity returns the caller set by AuthMiddleware.
func Identity(c *gin.Context) auth.Identity {
	return auth.Identity{
		UserID: c.GetUint(ContextUserID),
		Role:   c.MustGet(ContextUserRole).(models.Role),
	}
}
