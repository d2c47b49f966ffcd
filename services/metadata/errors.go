package metadata

import (
	"fmt"
	"strconv"
)

// FetchErrorKind classifies a remote fetch failure.
type FetchErrorKind string

const (
	FetchTransport  FetchErrorKind = "transport"
	FetchBadStatus  FetchErrorKind = "badStatus"
	FetchDecode     FetchErrorKind = "decodeFailed"
	FetchInvalidURL FetchErrorKind = "invalidURL"
	FetchNoData     FetchErrorKind = "noData"
)

// FetchError is the value every remote client call returns on failure.
// No retry policy exists: a single failed attempt is final and surfaces
// to the caller as-is.
type FetchError struct {
	Kind   FetchErrorKind
	Op     string // e.g. "tmdb trending", "video search"
	Status int    // HTTP status, set for badStatus only
	Cause  error
}

func (e *FetchError) Error() string {
	msg := e.Op + ": " + string(e.Kind)
	if e.Status != 0 {
		msg += " (HTTP " + strconv.Itoa(e.Status) + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func transportError(op string, cause error) *FetchError {
	return &FetchError{Kind: FetchTransport, Op: op, Cause: cause}
}

func badStatusError(op string, status int) *FetchError {
	return &FetchError{Kind: FetchBadStatus, Op: op, Status: status}
}

func decodeError(op string, cause error) *FetchError {
	return &FetchError{Kind: FetchDecode, Op: op, Cause: cause}
}

func invalidURLError(op string, cause error) *FetchError {
	return &FetchError{Kind: FetchInvalidURL, Op: op, Cause: fmt.Errorf("invalid url: %w", cause)}
}

func noDataError(op string) *FetchError {
	return &FetchError{Kind: FetchNoData, Op: op}
}
