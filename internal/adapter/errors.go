package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels wrapped by [ServerError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// Matrix error codes the client reacts to.
const (
	ErrCodeUnknownToken    = "M_UNKNOWN_TOKEN"
	ErrCodeMissingToken    = "M_MISSING_TOKEN"
	ErrCodeForbidden       = "M_FORBIDDEN"
	ErrCodeNotFound        = "M_NOT_FOUND"
	ErrCodeLimitExceeded   = "M_LIMIT_EXCEEDED"
	ErrCodeConsentNotGiven = "M_CONSENT_NOT_GIVEN"
	ErrCodeUnknown         = "M_UNKNOWN"
)

// ServerError is a non-2xx response from the homeserver.
type ServerError struct {
	StatusCode int    `json:"-"`
	ErrCode    string `json:"errcode"`
	Message    string `json:"error"`
	SoftLogout bool   `json:"soft_logout,omitempty"`
	ConsentURI string `json:"consent_uri,omitempty"`

	// status is the sentinel matching StatusCode.
	status error
}

func (e *ServerError) Error() string {
	if e.ErrCode == "" {
		return fmt.Sprintf("%v (http %d): %s", e.status, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%v (http %d, %s): %s", e.status, e.StatusCode, e.ErrCode, e.Message)
}

func (e *ServerError) Unwrap() error {
	return e.status
}

// NewServerError builds a [ServerError] for statusCode wrapping the matching
// status sentinel.
func NewServerError(statusCode int, errCode, message string) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		ErrCode:    errCode,
		Message:    message,
		status:     statusSentinel(statusCode),
	}
}
