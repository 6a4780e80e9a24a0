package httperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindDuplicate
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnavailable
	KindRateLimited
)

// BusinessError is an error that is safe to show to API clients.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]any
}

func (e *BusinessError) Error() string {
	return e.Code
}

// WithDetails returns a copy of e carrying extra response fields.
func (e *BusinessError) WithDetails(details map[string]any) *BusinessError {
	cp := *e
	cp.Details = details
	return &cp
}

func newErr(kind Kind, code, message string) *BusinessError {
	return &BusinessError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *BusinessError { return newErr(KindValidation, code, message) }
func Duplicate(code, message string) *BusinessError  { return newErr(KindDuplicate, code, message) }
func Unauthorized(code, message string) *BusinessError {
	return newErr(KindUnauthorized, code, message)
}
func Forbidden(code, message string) *BusinessError { return newErr(KindForbidden, code, message) }
func NotFound(code, message string) *BusinessError  { return newErr(KindNotFound, code, message) }
func Conflict(code, message string) *BusinessError  { return newErr(KindConflict, code, message) }
func Unavailable(code, message string) *BusinessError {
	return newErr(KindUnavailable, code, message)
}

var (
	ErrStoreUnavailable  = Unavailable("store_unavailable", "Service temporarily unavailable, please retry later.")
	ErrForbidden         = Forbidden("forbidden", "You are not allowed to perform this action.")
	ErrInvalidTransition = Conflict("invalid_transition", "This booking cannot move to the requested status.")
	ErrRateLimited       = newErr(KindRateLimited, "rate_limited", "Too many requests, slow down.")
)

// As extracts the BusinessError from err, if any.
func As(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

func IsBusiness(err error, code string) bool {
	if be, ok := As(err); ok {
		return be.Code == code
	}
	return false
}

func CodeOf(err error) string {
	if be, ok := As(err); ok {
		return be.Code
	}
	return ""
}
