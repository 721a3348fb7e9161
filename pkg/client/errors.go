package client

import (
	"errors"
	"fmt"
)

// Kind classifies API errors into the categories callers branch on.
type Kind string

const (
	// KindInvalidArgument indicates a malformed caller input, such as a
	// non-positive chunk size or a missing required identifier.
	KindInvalidArgument Kind = "invalid_argument"

	// KindNotFound indicates the remote response lacked the expected record
	// for a requested key.
	KindNotFound Kind = "not_found"

	// KindMalformedResponse indicates an expected container field was absent
	// from an otherwise successful response.
	KindMalformedResponse Kind = "malformed_response"

	// KindTransport indicates a transport-level failure: network error,
	// non-2xx status, non-JSON content type, or a JSON parse failure.
	KindTransport Kind = "transport"
)

// APIError is the error type returned by all operations in this module.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string

	// Key identifies the offending identifier, when one exists.
	Key string

	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("steam %s error", e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Key != "" {
		msg = fmt.Sprintf("%s (key %s)", msg, e.Key)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or the empty Kind when err is not an
// APIError.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// NewError builds an APIError with a formatted message.
func NewError(kind Kind, format string, args ...any) *APIError {
	return &APIError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewKeyError builds an APIError naming the offending key.
func NewKeyError(kind Kind, key, format string, args ...any) *APIError {
	return &APIError{Kind: kind, Key: key, Message: fmt.Sprintf(format, args...)}
}

// WrapTransport wraps err as a transport failure.
func WrapTransport(err error, format string, args ...any) *APIError {
	return &APIError{Kind: KindTransport, Message: fmt.Sprintf(format, args...), Err: err}
}
