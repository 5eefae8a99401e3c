package mgmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrInvalidArgument is wrapped by every error returned for a missing or
// blank argument before a request is built.
var ErrInvalidArgument = errors.New("invalid argument")

// APIError is returned by Execute when the server answers with a non-2xx
// status. The server payload is passed through as-is.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"error"`
	Message    string `json:"message"`
	ErrorCode  string `json:"errorCode"`

	// Body is the raw response body.
	Body string `json:"-"`

	// RateLimit is set on 429 responses.
	RateLimit *RateLimit `json:"-"`
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	case e.Name != "":
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Name)
	default:
		return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
	}
}

// RateLimit holds the x-ratelimit-* headers of a throttled response. Unknown
// values are -1 (or the zero time for Reset).
type RateLimit struct {
	Limit     int64
	Remaining int64
	Reset     time.Time
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{}

	// Some endpoints use description instead of message.
	var payload struct {
		APIError
		Description      string `json:"description"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		*apiErr = payload.APIError
		if apiErr.Message == "" {
			apiErr.Message = payload.Description
		}
		if apiErr.Message == "" {
			apiErr.Message = payload.ErrorDescription
		}
	}

	apiErr.StatusCode = resp.StatusCode
	apiErr.Body = string(body)

	if resp.StatusCode == http.StatusTooManyRequests {
		apiErr.RateLimit = parseRateLimit(resp.Header)
	}

	return apiErr
}

func parseRateLimit(h http.Header) *RateLimit {
	rl := &RateLimit{
		Limit:     headerInt(h, "x-ratelimit-limit"),
		Remaining: headerInt(h, "x-ratelimit-remaining"),
	}
	if reset := headerInt(h, "x-ratelimit-reset"); reset >= 0 {
		rl.Reset = time.Unix(reset, 0)
	}
	return rl
}

func headerInt(h http.Header, key string) int64 {
	v, err := strconv.ParseInt(h.Get(key), 10, 64)
	if err != nil {
		return -1
	}
	return v
}
