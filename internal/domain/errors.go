package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Classification engine errors
	CodeInvalidAnswerValue ErrorCode = "INVALID_ANSWER_VALUE"
	CodeUnknownQuestionID  ErrorCode = "UNKNOWN_QUESTION_ID"
	CodePhaseSequence      ErrorCode = "PHASE_SEQUENCE_ERROR"
	CodeNoCatalogueMatch   ErrorCode = "NO_CATALOGUE_MATCH"

	// Session errors
	CodeSessionNotFound  ErrorCode = "SESSION_NOT_FOUND"
	CodeSessionCompleted ErrorCode = "SESSION_COMPLETED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// WithContext attaches a key/value pair describing the offending input.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err is a DomainError carrying code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

// NewInvalidAnswerValueError reports a raw answer outside [0, 1] or not a number.
// A nil value is reported as null.
func NewInvalidAnswerValueError(questionID string, value interface{}) *DomainError {
	shown := "null"
	switch v := value.(type) {
	case nil:
	case string:
		shown = fmt.Sprintf("%q", v)
	default:
		shown = fmt.Sprintf("%v", v)
	}
	return NewError(CodeInvalidAnswerValue,
		fmt.Sprintf("answer value %s for question %q must be a number in [0, 1]", shown, questionID), nil).
		WithContext("question_id", questionID).
		WithContext("value", shown)
}

func NewUnknownQuestionIDError(questionID string) *DomainError {
	return NewError(CodeUnknownQuestionID, fmt.Sprintf("unknown question id: %s", questionID), nil).
		WithContext("question_id", questionID)
}

func NewPhaseSequenceError(message string) *DomainError {
	return NewError(CodePhaseSequence, message, nil)
}

func NewNoCatalogueMatchError(cell MacroCell) *DomainError {
	return NewError(CodeNoCatalogueMatch, fmt.Sprintf("no ideologies catalogued for macro-cell %s", cell), nil).
		WithContext("macro_cell", string(cell))
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("session not found: %s", sessionID), nil).
		WithContext("session_id", sessionID)
}

func NewSessionCompletedError(sessionID string) *DomainError {
	return NewError(CodeSessionCompleted, fmt.Sprintf("session %s is already complete", sessionID), nil).
		WithContext("session_id", sessionID)
}
