package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a [*ServerError] otherwise.
// The Matrix error body is decoded when present; a non-JSON body is kept as
// the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	srvErr := NewServerError(resp.StatusCode(), "", "")

	body := strings.TrimSpace(string(resp.Body()))
	if err := json.Unmarshal([]byte(body), srvErr); err != nil || (srvErr.ErrCode == "" && srvErr.Message == "") {
		srvErr.Message = body
	}
	if srvErr.Message == "" {
		srvErr.Message = http.StatusText(resp.StatusCode())
	}

	return srvErr
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}
