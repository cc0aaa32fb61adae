package client

import (
	"errors"
	"fmt"

	"github.com/naveenspark/gymhum/pkg/domain"
)

// NetworkError is a transport failure or a non-2xx response for a section fetch.
// StatusCode is 0 when the request never got a response.
type NetworkError struct {
	Section    domain.SectionKind
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d: %s", e.Section, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch %s: %v", e.Section, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError means the response body was not a valid JSON array of items.
type ParseError struct {
	Section domain.SectionKind
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Section, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsStatus returns true if err (or any wrapped error) is a NetworkError with the given status code.
func IsStatus(err error, code int) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.StatusCode == code
	}
	return false
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsParse reports whether err is a ParseError.
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
