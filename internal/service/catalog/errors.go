package catalog

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
	ErrNotFound        = errors.New("pokemon not found")
	ErrInternal        = errors.New("internal error")
)

// Error carries a client-facing message alongside one of the sentinel kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func invalidArgument(message string) error {
	return &Error{Kind: ErrInvalidArgument, Message: message}
}

// Message returns the client-facing message of err.
func Message(err error) string {
	var catalogErr *Error
	if errors.As(err, &catalogErr) {
		return catalogErr.Message
	}
	return err.Error()
}
