// Package api implements the HTTP transport for the WhatsApp Cloud API.
//
// Client performs single request/response cycles against the Graph API
// and converts every failure into the apierrors taxonomy. RetryConfig
// layers bounded retry with exponential backoff over those cycles,
// consulting the taxonomy to decide what is retryable.
package api
