package handlers

import (
	"encoding/json"
	"fmt"

	"user-directory-api/pkg/lambda"
)

// ErrorResponse represents a standard error response body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Respond wraps a status code and payload into the response envelope,
// serializing the payload to JSON and attaching the CORS header set.
// Every handler produces its response through this function; none emits
// headers independently. A nil payload yields an empty body.
func Respond(statusCode int, payload interface{}) (*lambda.Response, error) {
	headers := CORSHeaders()
	headers["Content-Type"] = "application/json"

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal response payload: %w", err)
		}
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       body,
	}, nil
}
