package fatsecret

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrMissingCredentials indicates the consumer key or secret was not supplied.
	ErrMissingCredentials = errors.New("consumer key and consumer secret are required")

	// ErrPartialToken indicates only one half of an access token pair was supplied.
	ErrPartialToken = errors.New("access token and access secret must be supplied together")

	// ErrNoRequestToken indicates CompleteAuthorization was called before
	// BeginAuthorization issued a request token.
	ErrNoRequestToken = errors.New("no request token: call BeginAuthorization first")
)

// ErrorKind classifies an API error envelope by its code band.
type ErrorKind int

const (
	// KindGeneral covers codes 1, 10, 11, 12, 20 and 21 (missing method,
	// invalid IDs, weight limits and similar).
	KindGeneral ErrorKind = iota
	// KindAuthentication covers code 2 and codes 3 through 9 (OAuth problems).
	KindAuthentication
	// KindParameter covers codes 101 through 108 (missing or malformed
	// request parameters).
	KindParameter
	// KindApplication covers codes 201 through 207 (application-level
	// rejections).
	KindApplication
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindGeneral:
		return "general"
	case KindAuthentication:
		return "authentication"
	case KindParameter:
		return "parameter"
	case KindApplication:
		return "application"
	}
	return "unknown"
}

// APIError is an error envelope returned by the FatSecret API.
type APIError struct {
	Kind    ErrorKind
	Code    int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("fatsecret %s error %d: %s", e.Kind, e.Code, e.Message)
}

// IsAuthentication reports whether the error indicates a missing or invalid
// OAuth session.
func (e *APIError) IsAuthentication() bool {
	return e.Kind == KindAuthentication
}

// IsParameter reports whether the error indicates a bad request parameter.
func (e *APIError) IsParameter() bool {
	return e.Kind == KindParameter
}
