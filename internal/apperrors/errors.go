package apperrors

import "errors"

// Kind classifies an application error so the HTTP layer can pick a status
// code without inspecting message text.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindAuthorization
)

// Error is the error type returned by the service layer.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Validation reports invalid input or a violated precondition.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NotFound reports an operation against a record that does not exist.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Authorization reports a request acting on a resource it does not own.
func Authorization(msg string) error {
	return &Error{Kind: KindAuthorization, Msg: msg}
}

func is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func IsValidation(err error) bool    { return is(err, KindValidation) }
func IsNotFound(err error) bool      { return is(err, KindNotFound) }
func IsAuthorization(err error) bool { return is(err, KindAuthorization) }
