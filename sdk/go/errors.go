package contactrelay

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidResponse is returned when the relay answers with something that
// is not its JSON envelope.
var ErrInvalidResponse = errors.New("contactrelay: invalid response")

// APIError represents an error response from the relay.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("contactrelay: API error %d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("contactrelay: API error %d: %s", e.StatusCode, e.Message)
}

func parseAPIError(statusCode int, body []byte) error {
	var result SendResult
	if err := json.Unmarshal(body, &result); err == nil && result.Error != "" {
		return &APIError{
			StatusCode: statusCode,
			Message:    result.Error,
			Details:    result.Details,
		}
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    string(body),
	}
}

// IsAPIError checks whether err is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
