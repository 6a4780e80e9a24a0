package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	ContextRequestID = "requestID"
	ContextUserID    = "userID"
)

type HTTPError struct {
	Error string `json:"error"`
}

func StatusOf(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindDuplicate, KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func Write(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: message})
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "Something went wrong.")
}

// Respond logs err with the operation and actor, then writes the mapped
// envelope. Non-business errors never reach the client.
func Respond(c *gin.Context, op string, err error) {
	attrs := []any{
		slog.String("op", op),
		slog.String("request_id", c.GetString(ContextRequestID)),
		slog.String("error", err.Error()),
	}
	if uid, ok := c.Get(ContextUserID); ok {
		attrs = append(attrs, slog.Any("actor_id", uid))
	}

	be, ok := As(err)
	if !ok {
		slog.ErrorContext(c.Request.Context(), "request failed", attrs...)
		Internal(c)
		return
	}

	status := StatusOf(be.Kind)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", attrs...)
	} else {
		slog.InfoContext(c.Request.Context(), "request rejected", append(attrs, slog.String("code", be.Code))...)
	}

	if len(be.Details) == 0 {
		Write(c, status, be.Message)
		return
	}

	body := gin.H{"error": be.Message}
	for k, v := range be.Details {
		body[k] = v
	}
	c.AbortWithStatusJSON(status, body)
}

// BindError turns a gin binding failure into a validation response.
func BindError(c *gin.Context, op string, err error) {
	Respond(c, op, Validation("invalid_request", bindMessage(err)))
}

func bindMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return "Invalid request: field " + fe.Field() + " failed on " + fe.Tag() + "."
	}
	return "Invalid request body."
}
