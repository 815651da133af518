package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	apperrors "audio-transcript/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindBadRequest         ErrorKind = "bad_request"
	KindUnsupportedMedia   ErrorKind = "unsupported_media_type"
	KindPayloadTooLarge    ErrorKind = "payload_too_large"
	KindNotFound           ErrorKind = "not_found"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindBadGateway         ErrorKind = "bad_gateway"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Code      string            `json:"code,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindNotFound:
		return http.StatusNotFound
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case KindBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// FromDomain converts an application error into an API error. The domain
// kind is kept in Code and the message is the full error chain.
func FromDomain(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	domainKind := apperrors.KindOf(err)
	result := &APIError{
		Message: err.Error(),
		Code:    string(domainKind),
	}

	switch domainKind {
	case apperrors.KindConfiguration:
		result.Kind = KindServiceUnavailable
	case apperrors.KindRead:
		result.Kind = KindBadRequest
	case apperrors.KindInvalidInput:
		switch {
		case stderrors.Is(err, apperrors.ErrUnsupportedMediaType):
			result.Kind = KindUnsupportedMedia
		case stderrors.Is(err, apperrors.ErrFileTooLarge):
			result.Kind = KindPayloadTooLarge
		default:
			result.Kind = KindBadRequest
		}
	case apperrors.KindRemote, apperrors.KindMalformed:
		result.Kind = KindBadGateway
	default:
		result.Kind = KindInternal
	}

	return result
}
