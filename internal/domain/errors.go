package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Interview specific errors
	ErrQuestionNotFound      ErrorCode = "QUESTION_NOT_FOUND"
	ErrSpeechUnintelligible  ErrorCode = "SPEECH_UNINTELLIGIBLE"
	ErrSpeechServiceError    ErrorCode = "SPEECH_SERVICE_ERROR"
	ErrSentimentServiceError ErrorCode = "SENTIMENT_SERVICE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewQuestionNotFoundError(question string) *DomainError {
	return NewError(ErrQuestionNotFound, fmt.Sprintf("Question not found in database: %s", question), nil)
}

// NewSpeechUnintelligibleError signals that the recognizer produced no
// transcript. The caller should re-record, not retry the same audio.
func NewSpeechUnintelligibleError() *DomainError {
	return NewError(ErrSpeechUnintelligible, "Could not understand audio", nil)
}

func NewSpeechServiceError(err error) *DomainError {
	return NewError(ErrSpeechServiceError, "Could not reach speech recognition service", err)
}

func NewSentimentServiceError(err error) *DomainError {
	return NewError(ErrSentimentServiceError, "Failed to analyze sentiment", err)
}
