package vapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx answer from the remote platform
type APIError struct {
	StatusCode int
	Status     string // reason phrase, e.g. "Bad Request"
	Body       []byte
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s\n%s", e.StatusCode, e.Status, e.Detail)
}

func newAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Body:       body,
		Detail:     errorDetail(body),
	}
}

// errorDetail prefers a validation message naming the allowed values, then the
// parsed body, then the raw text
func errorDetail(body []byte) string {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}

	if obj, ok := parsed.(map[string]any); ok {
		if messages, ok := obj["message"].([]any); ok && len(messages) > 0 {
			if first, ok := messages[0].(string); ok && strings.Contains(first, "must be one of") {
				return first
			}
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return string(body)
	}
	return compact.String()
}
