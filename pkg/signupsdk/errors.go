package signupsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error codes used in JSON error responses.
const (
	ErrorCodeServerError = "server_error"
)

// APIError is returned for every unexpected response status.
type APIError struct {
	StatusCode int

	// Code is set for JSON error bodies only
	Code string

	// Message is the error description or the plain text body
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("signup: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("signup: %d: %s", e.StatusCode, e.Message)
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			apiErr.Code = errResp.Error
			apiErr.Message = errResp.ErrorDescription
			return apiErr
		}
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
