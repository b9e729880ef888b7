package client

import "errors"

var (
	// ErrSessionInvalidated is returned by [App.Run] when the homeserver
	// rejected the access token.
	ErrSessionInvalidated = errors.New("session invalidated by the homeserver")

	// ErrConsentNotGiven is returned by [App.Run] when the homeserver refuses
	// to serve requests until its privacy policy is accepted.
	ErrConsentNotGiven = errors.New("homeserver requires consent to its privacy policy")
)
