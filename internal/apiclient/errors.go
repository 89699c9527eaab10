package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnauthorized is matched by errors.Is for any 401 response.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTimeout wraps requests that hit the client timeout or a context deadline.
	ErrTimeout = errors.New("request timeout")
	// ErrUnreachable wraps connection failures such as a refused dial.
	ErrUnreachable = errors.New("cannot connect to server")
)

// Error is a non-2xx response from the API.
type Error struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
	Body       []byte
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// ServerMessage returns the message the server put in an error body, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// Message returns the server supplied message for err, or fallback.
func Message(err error, fallback string) string {
	if msg, ok := ServerMessage(err); ok {
		return msg
	}
	return fallback
}

// StatusCode returns the HTTP status carried by err, or 0 for transport errors.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// messageFromBody extracts "message", then "error", from a JSON error body.
func messageFromBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	var s string
	if err := json.Unmarshal(payload.Error, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return ""
}
