package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a failure caused by a malformed client argument.
// The error translator maps anything wrapping it to BadRequest with the
// default message; the wrapped detail is never sent to the client.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgument returns an error wrapping ErrInvalidArgument with detail
// for server-side logs.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// BusinessError is an expected domain failure carrying the exact ErrorCode
// the response must use, plus an optional message overriding the code's
// default one. Only the message can be overridden; status and code always
// come from the ErrorCode.
type BusinessError struct {
	code  ErrorCode
	msg   string
	cause error
}

// New returns a BusinessError using ec's default message.
func New(ec ErrorCode) *BusinessError {
	return &BusinessError{code: ec}
}

// NewWithMessage returns a BusinessError whose response message is msg.
func NewWithMessage(ec ErrorCode, msg string) *BusinessError {
	return &BusinessError{code: ec, msg: msg}
}

// Wrap returns a BusinessError for ec that records cause for errors.Is/As
// and logging. The cause is not exposed to clients.
func Wrap(ec ErrorCode, cause error) *BusinessError {
	return &BusinessError{code: ec, cause: cause}
}

// ErrorCode returns the registry entry the error translates to.
func (e *BusinessError) ErrorCode() ErrorCode { return e.code }

// CustomMessage returns the override message, or "" when the default
// message of the ErrorCode applies.
func (e *BusinessError) CustomMessage() string { return e.msg }

func (e *BusinessError) Error() string {
	msg := e.msg
	if msg == "" {
		msg = e.code.msg
	}
	if e.cause != nil {
		return e.code.code + ": " + msg + ": " + e.cause.Error()
	}
	return e.code.code + ": " + msg
}

func (e *BusinessError) Unwrap() error { return e.cause }

// Is reports whether target is a BusinessError with the same code, so
// callers can write errors.Is(err, apperr.New(apperr.Conflict)).
func (e *BusinessError) Is(target error) bool {
	t, ok := target.(*BusinessError)
	return ok && t.code.code == e.code.code
}

// CodeOf returns the ErrorCode of the first BusinessError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.code, true
	}
	return ErrorCode{}, false
}
