package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBackendUnreachable = errors.New("Failed to connect to the backend. Please check if the backend service is running.")
	ErrNotYouTubeURL      = errors.New("not a YouTube video URL")
	ErrMissingAPIKey      = errors.New("Please configure your OpenRouter API key first.")
	ErrEmptyAPIKey        = errors.New("API key cannot be empty")
	ErrInvalidVideo       = errors.New("Invalid YouTube URL or Video ID.")
	ErrEmptyVideoInput    = errors.New("Please enter a YouTube Video ID or URL.")
)

// BackendError carries the message the backend put in the "error" field of a
// non-2xx JSON response.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return e.Message
}

// UserMessage flattens any error returned by the backend layer into the
// string a view should display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrBackendUnreachable) {
		return ErrBackendUnreachable.Error()
	}
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Message
	}
	return fmt.Sprint(err)
}
