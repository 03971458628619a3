package notepm

import (
	"fmt"
)

// APIError is returned when the NotePM API responds with a non-2xx
// status. It carries the status code and the response body text.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notepm api error (status %d): %s", e.StatusCode, e.Body)
}

// InvalidResponseError is returned when a 2xx response body fails to
// parse as JSON.
type InvalidResponseError struct {
	Err error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}
