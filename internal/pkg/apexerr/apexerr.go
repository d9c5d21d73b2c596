// Package apexerr defines the closed error taxonomy for the Apex gateway.
// Every failure of a gateway call is tagged with exactly one Kind, so the
// HTTP layer can map each to a distinct status code without re-deriving
// network-stack semantics.
package apexerr

import (
	"errors"
	"fmt"
)

// Kind identifies one failure class of an Apex call
type Kind int

const (
	// KindUnknown tags failures that match none of the classified cases
	KindUnknown Kind = iota
	// KindConfig means the endpoint URL was not configured; no network call was made
	KindConfig
	// KindTimeout means the round-trip deadline elapsed and the request was cancelled
	KindTimeout
	// KindNetwork means the connection could not be established (refused, DNS, ...)
	KindNetwork
	// KindHTTP means Apex answered with a non-2xx status
	KindHTTP
	// KindInvalidResponse means a 2xx body was not the expected JSON contract
	KindInvalidResponse
)

// String returns the stable name of the kind
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "CONFIG_ERROR"
	case KindTimeout:
		return "APEX_TIMEOUT"
	case KindNetwork:
		return "APEX_NETWORK_ERROR"
	case KindHTTP:
		return "APEX_HTTP_ERROR"
	case KindInvalidResponse:
		return "APEX_INVALID_RESPONSE"
	default:
		return "APEX_UNKNOWN_ERROR"
	}
}

// Error is a tagged Apex gateway failure. HTTPStatus is only set for
// KindHTTP and records the upstream status code for diagnostics.
type Error struct {
	Kind       Kind
	HTTPStatus int
	cause      error
}

// New creates a tagged error with an underlying cause
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// NewHTTP creates a KindHTTP error recording the upstream status code
func NewHTTP(status int) *Error {
	return &Error{Kind: KindHTTP, HTTPStatus: status}
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindHTTP:
		return fmt.Sprintf("%s: apex returned status %d", e.Kind, e.HTTPStatus)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Wrap tags err as KindUnknown unless it is already a tagged gateway error,
// in which case it propagates unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}
	return New(KindUnknown, err)
}

// KindOf extracts the kind of a gateway error, or KindUnknown for any
// other non-nil error.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return KindUnknown
}
