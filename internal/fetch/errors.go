// internal/fetch/errors.go
package fetch

import "fmt"

// HTTPError represents a non-2xx response with status code
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e HTTPError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("HTTP %d: %s - %s", e.StatusCode, e.Status, e.URL)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

// GetStatusCode returns the HTTP status code carried by the error
func (e HTTPError) GetStatusCode() int {
	return e.StatusCode
}

// NewHTTPError creates a new HTTPError
func NewHTTPError(statusCode int, status string, url string) HTTPError {
	return HTTPError{
		StatusCode: statusCode,
		Status:     status,
		URL:        url,
	}
}
