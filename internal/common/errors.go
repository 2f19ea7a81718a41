package common

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type Code string

const (
	CodeNotFound     Code = "not_found"
	CodeValidation   Code = "validation"
	CodeConflict     Code = "conflict"
	CodeConflictRisk Code = "conflict_risk"
	CodeUnavailable  Code = "unavailable"
	CodeRateLimited  Code = "rate_limited"
	CodeInternal     Code = "internal"
)

// Error is the coded error carried across service and repository boundaries.
// CodeConflictRisk marks a paired-reference update that failed after its
// primary write succeeded; callers may retry the idempotent paired step.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	Cause   error
	stack   []byte
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Stack() []byte {
	return e.stack
}

func NewError(code Code, message string, cause error) *Error {
	e := &Error{Code: code, Message: message, Cause: cause}
	if code == CodeInternal || code == CodeUnavailable {
		if stackErr, ok := cause.(*goerrors.Error); ok {
			e.stack = stackErr.Stack()
		} else if cause != nil {
			e.stack = goerrors.Wrap(cause, 2).Stack()
		} else {
			e.stack = goerrors.New(message).Stack()
		}
	}
	return e
}

func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}
