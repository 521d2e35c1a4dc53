package services

// Kind classifies a service failure so the API boundary can pick a status
// code without string matching.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindConflict
	KindValidation
	KindUnauthenticated
	KindInvalidOperation
	KindInvalidTransition
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewInvalidOperation(message string) *Error {
	return &Error{Kind: KindInvalidOperation, Message: message}
}

func NewInvalidTransition(message string) *Error {
	return &Error{Kind: KindInvalidTransition, Message: message}
}
