package models

import "fmt"

// GlobalErrorKind identifies a failure that affects the whole session rather
// than a single request.
type GlobalErrorKind int

const (
	// GlobalErrorInvalidToken means the homeserver rejected the access token.
	GlobalErrorInvalidToken GlobalErrorKind = iota + 1

	// GlobalErrorConsentNotGiven means the user must accept the server's
	// privacy policy before any further request is served.
	GlobalErrorConsentNotGiven
)

func (k GlobalErrorKind) String() string {
	switch k {
	case GlobalErrorInvalidToken:
		return "invalid_token"
	case GlobalErrorConsentNotGiven:
		return "consent_not_given"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// GlobalError is published on the error bus whenever a request fails with a
// session-invalidating error.
type GlobalError struct {
	Kind GlobalErrorKind

	// Call names the remote call that failed (e.g. "group.summary").
	Call string

	// SoftLogout is set for GlobalErrorInvalidToken when the server allows
	// the session to be restored by logging in again.
	SoftLogout bool

	// ConsentURI is set for GlobalErrorConsentNotGiven.
	ConsentURI string

	// Err is the original request error.
	Err error
}

func (e GlobalError) Error() string {
	return fmt.Sprintf("%s during %s: %v", e.Kind, e.Call, e.Err)
}

func (e GlobalError) Unwrap() error {
	return e.Err
}
