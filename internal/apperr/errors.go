// Package apperr defines the application error taxonomy. Services return these
// errors; handlers translate them to HTTP status codes at the boundary.
package apperr

import "errors"

var (
	// ErrAuth covers unknown email and wrong password alike, so the
	// user-facing message can stay generic and never confirms whether an
	// account exists.
	ErrAuth = errors.New("invalid credentials")

	// ErrConflict means the caller already holds an active transfer request.
	ErrConflict = errors.New("an active request already exists")

	// ErrForbidden means the caller is not the owner of the resource.
	ErrForbidden = errors.New("forbidden")

	ErrNotFound = errors.New("not found")

	// ErrToken covers malformed, tampered and expired reset tokens; callers
	// must not distinguish between them.
	ErrToken = errors.New("invalid or expired token")
)

// ValidationError carries per-field messages for re-rendering a form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for f, msg := range e.Fields {
		return f + ": " + msg
	}
	return "validation failed"
}

// NewValidation builds a ValidationError from field/message pairs.
func NewValidation(pairs ...string) *ValidationError {
	fields := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fields[pairs[i]] = pairs[i+1]
	}
	return &ValidationError{Fields: fields}
}

// AsValidation reports whether err is a ValidationError and returns it.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
