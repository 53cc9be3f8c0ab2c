package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// GenericRequestMessage is surfaced when the server did not supply a detail message
const GenericRequestMessage = "Request failed."

var (
	// ErrRequestFailed is wrapped by every RequestError
	ErrRequestFailed = errors.New("api: request failed")

	// ErrBadResponse means a successful response carried a body that could not be parsed
	ErrBadResponse = errors.New("api: malformed response")

	// ErrTransport means the request never produced an HTTP response
	ErrTransport = errors.New("api: transport failure")

	// ErrNoSaver means a download was attempted without a file saver
	ErrNoSaver = errors.New("api: no file saver configured")
)

// RequestError is returned for any non-2xx response. Message is the server's
// detail field verbatim, or GenericRequestMessage.
type RequestError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}

// errorBody is the backend's error envelope
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// validationIssue is one entry of a list-shaped detail (request validation failures)
type validationIssue struct {
	Msg string `json:"msg"`
}

// detailMessage extracts a human readable message from an error body.
// detail may be a string or a list of validation issues.
func detailMessage(body []byte) string {
	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var issues []validationIssue
	if err := json.Unmarshal(envelope.Detail, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if issue.Msg != "" {
				msgs = append(msgs, issue.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}

// newRequestError builds a RequestError from a non-2xx response body
func newRequestError(status int, body []byte, requestID string) *RequestError {
	message := detailMessage(body)
	if message == "" {
		message = GenericRequestMessage
	}
	return &RequestError{Status: status, Message: message, RequestID: requestID}
}

// transportError wraps a lower-level failure with ErrTransport
func transportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}
