package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient pointed at baseURL with the given
// per-request timeout and a JSON Accept header.
//
// Retries are disabled: every request is issued exactly once and retry
// policy, if any, belongs to the caller.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://matrix.example.org", 30*time.Second)
//	resp, err := client.R().Get("/_matrix/client/r0/joined_groups")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
