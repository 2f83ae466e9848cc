package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RequestError is a failed API call. Message prefers the server-supplied
// message field, then the HTTP status text. Fields carries the field-level
// messages of a validation failure, when the server sent any. Body is the
// decoded response body for caller inspection.
type RequestError struct {
	Status  int
	Message string
	Fields  map[string]string
	Body    json.RawMessage
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (status %d): %s", e.Status, e.Message)
}

func newRequestError(status int, body json.RawMessage) *RequestError {
	var payload struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	// body is always valid JSON by the time we get here.
	_ = json.Unmarshal(body, &payload)

	message := payload.Message
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = "request failed"
	}

	return &RequestError{
		Status:  status,
		Message: message,
		Fields:  payload.Errors,
		Body:    body,
	}
}
