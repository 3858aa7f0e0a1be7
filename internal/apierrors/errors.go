// Package apierrors provides shared error types for the WhatsApp Cloud API client.
package apierrors

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAccessToken is returned when no access token is provided.
	ErrMissingAccessToken = errors.New("access token is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrUnauthorized is returned when the access token is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired access token")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrMediaNotFound is returned when a media object is not found.
	ErrMediaNotFound = errors.New("media not found")

	// ErrTemplateNotFound is returned when a message template is not found.
	ErrTemplateNotFound = errors.New("message template not found")

	// ErrPhoneNumberNotFound is returned when a phone number is not found.
	ErrPhoneNumberNotFound = errors.New("phone number not found")

	// ErrValidation is returned when request parameters or a webhook payload
	// fail client-side validation.
	ErrValidation = errors.New("validation failed")
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown ResourceType = ""
	// ResourceMedia indicates the error relates to a media object.
	ResourceMedia ResourceType = "media"
	// ResourceTemplate indicates the error relates to a message template.
	ResourceTemplate ResourceType = "template"
	// ResourcePhoneNumber indicates the error relates to a phone number.
	ResourcePhoneNumber ResourceType = "phone_number"
)

// APIError represents an error response from the Graph API.
//
// A rate-limit error is an APIError with StatusCode 429; it matches
// ErrRateLimited via errors.Is and may carry a RetryAfter hint parsed
// from the Retry-After response header.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Code is the provider error code (e.g. 131026 for an unreachable recipient).
	Code int
	// Subcode is the provider error subcode, 0 when absent.
	Subcode int
	// Type is the provider error type string (e.g. "OAuthException").
	Type string
	// Message is the human-readable error description.
	Message string
	// TraceID is the provider trace id (fbtrace_id) for support requests.
	TraceID string
	// RetryAfter is the provider-suggested wait before retrying a
	// rate-limited request. Zero when the header is absent.
	RetryAfter time.Duration
	// ResourceType identifies the resource a 404 relates to.
	ResourceType ResourceType
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error %d", e.StatusCode)
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (code %d", msg, e.Code)
		if e.Subcode != 0 {
			msg = fmt.Sprintf("%s/%d", msg, e.Subcode)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.TraceID != "" {
		msg = fmt.Sprintf("%s (trace_id: %s)", msg, e.TraceID)
	}
	return msg
}

// WACloudError implements the WACloudError interface.
func (e *APIError) WACloudError() {}

// IsRateLimit reports whether the error is the rate-limit specialization.
func (e *APIError) IsRateLimit() bool {
	return e.StatusCode == 429
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		switch e.ResourceType {
		case ResourceMedia:
			return target == ErrMediaNotFound
		case ResourceTemplate:
			return target == ErrTemplateNotFound
		case ResourcePhoneNumber:
			return target == ErrPhoneNumberNotFound
		default:
			// Fallback: match any not-found sentinel for unknown resource type
			return target == ErrMediaNotFound ||
				target == ErrTemplateNotFound ||
				target == ErrPhoneNumberNotFound
		}
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// WithResourceType returns a copy of the error with the resource type set.
// If the error is not an *APIError, it is returned unchanged.
func WithResourceType(err error, rt ResourceType) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		clone := *apiErr
		clone.ResourceType = rt
		return &clone
	}
	return err
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// WACloudError implements the WACloudError interface.
func (e *NetworkError) WACloudError() {}

// ValidationError represents a client-side mistake: malformed parameters or
// a webhook payload that fails shape validation. It is never retried.
type ValidationError struct {
	// Field names the offending parameter or payload field, when known.
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// WACloudError implements the WACloudError interface.
func (e *ValidationError) WACloudError() {}

// Retryable reports whether an error may be retried. Validation errors are
// client-side mistakes and retrying cannot fix them; everything else
// (network failures, API errors, rate limits) is retryable per policy.
func Retryable(err error) bool {
	var valErr *ValidationError
	return !errors.As(err, &valErr)
}

// RetryAfterHint extracts the provider-suggested retry delay from a
// rate-limit error. Returns zero when the error is not a rate limit or
// carries no hint.
func RetryAfterHint(err error) time.Duration {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.IsRateLimit() {
		return apiErr.RetryAfter
	}
	return 0
}

// IsRateLimit reports whether err is a rate-limit API error.
func IsRateLimit(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsRateLimit()
}
