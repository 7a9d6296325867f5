package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrNotConfigured is returned when no API key was supplied.
var ErrNotConfigured = errors.New("catalog api key not configured")

// ErrInvalidMediaType is returned for a media type other than movie or tv.
var ErrInvalidMediaType = errors.New("invalid media type")

// StatusError reports a non-success HTTP response from the catalog.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

func newStatusError(code int, status string) *StatusError {
	// net/http reports "404 Not Found"; keep the reason phrase only.
	text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if text == "" {
		text = http.StatusText(code)
	}
	return &StatusError{StatusCode: code, Status: text}
}
