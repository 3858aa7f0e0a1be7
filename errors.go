package wacloud

import (
	"errors"
	"time"

	"github.com/wacloud/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks. They are shared with the
// internal transport so matching works at every layer.
var (
	// ErrMissingAccessToken is returned when no access token is provided.
	ErrMissingAccessToken = apierrors.ErrMissingAccessToken

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = apierrors.ErrClientClosed

	// ErrUnauthorized is returned when the access token is invalid or expired.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrMediaNotFound is returned when a media object is not found.
	ErrMediaNotFound = apierrors.ErrMediaNotFound

	// ErrTemplateNotFound is returned when a message template is not found.
	ErrTemplateNotFound = apierrors.ErrTemplateNotFound

	// ErrPhoneNumberNotFound is returned when a phone number is not found.
	ErrPhoneNumberNotFound = apierrors.ErrPhoneNumberNotFound

	// ErrQRCodeNotFound is returned when a message QR code is not found.
	ErrQRCodeNotFound = errors.New("QR code not found")

	// ErrValidation is returned when request parameters or a webhook
	// payload fail client-side validation.
	ErrValidation = apierrors.ErrValidation

	// ErrSignatureInvalid is the canonical error for callers that surface
	// a rejected webhook delivery as an error. VerifyWebhookSignature
	// itself reports the outcome as a bool and never returns an error.
	ErrSignatureInvalid = errors.New("signature verification failed")
)

// WACloudError is implemented by all SDK errors.
type WACloudError interface {
	error
	WACloudError() // marker method
}

// APIError represents an error response from the WhatsApp Cloud API.
//
// A rate-limit failure is an APIError with StatusCode 429: it matches
// ErrRateLimited via errors.Is, and RetryAfter carries the
// provider-suggested wait when the Retry-After header was present.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Code is the provider error code.
	Code int
	// Subcode is the provider error subcode, 0 when absent.
	Subcode int
	// Type is the provider error type string (e.g. "OAuthException").
	Type string
	// Message is the human-readable error description.
	Message string
	// TraceID is the provider trace id for support requests.
	TraceID string
	// RetryAfter is the provider-suggested wait before retrying, zero
	// when absent.
	RetryAfter time.Duration

	// resource identifies which resource a 404 relates to, for sentinel
	// matching. Carried over from the transport layer.
	resource apierrors.ResourceType
}

func (e *APIError) Error() string {
	return (&apierrors.APIError{
		StatusCode: e.StatusCode,
		Code:       e.Code,
		Subcode:    e.Subcode,
		Type:       e.Type,
		Message:    e.Message,
		TraceID:    e.TraceID,
	}).Error()
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
		switch e.resource {
		case apierrors.ResourceMedia:
			return target == ErrMediaNotFound
		case apierrors.ResourceTemplate:
			return target == ErrTemplateNotFound
		case apierrors.ResourcePhoneNumber:
			return target == ErrPhoneNumberNotFound
		default:
			return target == ErrMediaNotFound ||
				target == ErrTemplateNotFound ||
				target == ErrPhoneNumberNotFound
		}
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
	// Attempt is the 1-based attempt number that observed the failure,
	// 0 when retries were not in play.
	Attempt int
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// WACloudError implements the WACloudError interface.
func (e *NetworkError) WACloudError() {}

// ValidationError represents a client-side mistake: malformed parameters
// or a webhook payload that fails shape validation.
type ValidationError struct {
	// Field names the offending parameter or payload field, when known.
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return (&apierrors.ValidationError{Field: e.Field, Message: e.Message}).Error()
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// WACloudError implements the WACloudError interface.
func (e *ValidationError) WACloudError() {}

// wrapError converts internal taxonomy errors to public errors so that
// errors.Is()/errors.As() checks work with the public types. Diagnostic
// fields (status, provider code, trace id) are preserved unchanged.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Subcode:    apiErr.Subcode,
			Type:       apiErr.Type,
			Message:    apiErr.Message,
			TraceID:    apiErr.TraceID,
			RetryAfter: apiErr.RetryAfter,
			resource:   apiErr.ResourceType,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{Err: netErr.Err, URL: netErr.URL, Attempt: netErr.Attempt}
	}

	var valErr *apierrors.ValidationError
	if errors.As(err, &valErr) {
		return &ValidationError{Field: valErr.Field, Message: valErr.Message}
	}

	return err
}
