package utils

import (
	"errors"
	"fmt"
)

// ErrorClass classifies every failure a domain operation can surface.
// The caller shows the message verbatim to the operator; no error is fatal
// to the process.
type ErrorClass string

const (
	ErrorClassValidation   ErrorClass = "validation"
	ErrorClassDuplicateKey ErrorClass = "duplicate_key"
	ErrorClassReference    ErrorClass = "reference"
	ErrorClassNotFound     ErrorClass = "not_found"
)

// DomainError carries a classification alongside an operator-facing message.
type DomainError struct {
	Class   ErrorClass
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

var ErrorRecordNotFound = &DomainError{Class: ErrorClassNotFound, Message: "record not found"}

func NewValidationError(format string, args ...any) error {
	return &DomainError{Class: ErrorClassValidation, Message: fmt.Sprintf(format, args...)}
}

func NewDuplicateKeyError(format string, args ...any) error {
	return &DomainError{Class: ErrorClassDuplicateKey, Message: fmt.Sprintf(format, args...)}
}

func NewReferenceError(format string, args ...any) error {
	return &DomainError{Class: ErrorClassReference, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) error {
	return &DomainError{Class: ErrorClassNotFound, Message: fmt.Sprintf(format, args...)}
}

// ClassOf reports the classification of err, if it carries one.
func ClassOf(err error) (ErrorClass, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Class, true
	}
	return "", false
}

func IsClass(err error, class ErrorClass) bool {
	c, ok := ClassOf(err)
	return ok && c == class
}

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
