package response

import (
	"errors"
	"fmt"
)

type Error struct {
	Code  int
	Err   error
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on code and base message, so a wrapped error still satisfies
// errors.Is against the sentinel it was built from.
func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}

// Wrap attaches cause to a sentinel created by NewError. Non-*Error sentinels
// are wrapped with fmt.Errorf.
func Wrap(sentinel error, cause error) error {
	var base *Error
	if !errors.As(sentinel, &base) {
		return fmt.Errorf("%w: %v", sentinel, cause)
	}
	return &Error{Code: base.Code, Err: base.Err, Cause: cause}
}
