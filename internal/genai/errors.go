package genai

import (
	"errors"
	"fmt"
)

// APIError is a vendor failure carrying the HTTP status and whatever detail
// payload the endpoint returned. Body is kept raw for debug responses.
type APIError struct {
	StatusCode   int
	VendorStatus string
	Message      string
	Body         []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("genai: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("genai: status %d", e.StatusCode)
}

// statusCarrier covers error shapes that expose an HTTP status without being
// our own APIError. Vendor SDKs have historically moved the status between a
// top-level field and a nested response; both probes live here so shape
// drift touches one file.
type statusCarrier interface {
	HTTPStatus() int
}

type responseCarrier interface {
	ResponseStatus() int
}

// HTTPStatus extracts an HTTP-like status code from an error, probing the
// known shapes in order. Zero means no status was found.
func HTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var sc statusCarrier
	if errors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	var rc responseCarrier
	if errors.As(err, &rc) {
		return rc.ResponseStatus()
	}
	return 0
}

// ClassifyRetryable reports whether the failure is worth retrying: only
// vendor-side 5xx responses qualify. Network errors without a status and
// every 4xx propagate immediately.
func ClassifyRetryable(err error) bool {
	status := HTTPStatus(err)
	return status >= 500 && status <= 599
}
