package fmeflow

import "fmt"

// APIError is returned when the FME Flow server responds with a non-2xx
// status. Message carries the server's "message" field when the error body
// decodes as JSON, otherwise the raw body.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("fmeflow: API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("fmeflow: API returned status %d: %s", e.StatusCode, e.Message)
}
