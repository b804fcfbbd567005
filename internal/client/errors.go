package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRequestFailed matches every error returned by the client.
var ErrRequestFailed = errors.New("request failed")

// RequestFailedError is the single error kind surfaced by the client, for
// transport failures and non-2xx responses alike.
type RequestFailedError struct {
	Op         string // operation name, e.g. "list"
	StatusCode int    // 0 when no response was received
	Message    string // service "error" field or the operation default
	Cause      error  // underlying transport or decode error (optional)
}

func (e *RequestFailedError) Error() string {
	msg := e.Op + ": " + e.Message
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *RequestFailedError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, ErrRequestFailed) match without exposing the cause chain.
func (e *RequestFailedError) Is(target error) bool { return target == ErrRequestFailed }

// UserMessage returns the human-readable message of a client error, or the
// error text for anything else.
func UserMessage(err error) string {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.Message
	}
	return err.Error()
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var rf *RequestFailedError
	return errors.As(err, &rf) && rf.StatusCode == http.StatusNotFound
}
