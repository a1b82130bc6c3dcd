package usecase

import "errors"

// Error kinds shared by the marketplace usecases. Handlers map each kind to
// an HTTP status; the message travels to the client unchanged.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrState        = errors.New("invalid state")
	ErrPrecondition = errors.New("precondition failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

// Error is a usecase failure with a client-facing message.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newError(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func validationError(msg string) error { return newError(ErrValidation, msg) }

func notFoundError(msg string) error { return newError(ErrNotFound, msg) }

func forbiddenError(msg string) error { return newError(ErrForbidden, msg) }

func internalError(cause error) error {
	return &Error{Kind: ErrInternal, Message: "Internal server error", Cause: cause}
}

// ErrorKind reports which usecase kind err belongs to, falling back to
// ErrInternal for anything unclassified.
func ErrorKind(err error) error {
	for _, k := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrForbidden, ErrState, ErrPrecondition, ErrUnauthorized} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternal
}

// ErrorMessage returns the client-facing message carried by err.
func ErrorMessage(err error) string {
	var ue *Error
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return "Internal server error"
}
