package wacloud

import (
	"net/http"
	"time"

	"github.com/wacloud/client-go/internal/api"
)

const (
	defaultBaseURL    = api.DefaultBaseURL
	defaultAPIVersion = api.DefaultAPIVersion
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL        string
	apiVersion     string
	phoneNumberID  string
	businessAcctID string
	httpClient     *http.Client
	timeout        time.Duration
	retry          *api.RetryConfig
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the Graph API origin. Useful for tests and proxies.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithAPIVersion sets the Graph API version path segment (e.g. "v21.0").
func WithAPIVersion(version string) Option {
	return func(c *clientConfig) {
		c.apiVersion = version
	}
}

// WithPhoneNumberID sets the sender phone number id used by message and
// media operations.
func WithPhoneNumberID(id string) Option {
	return func(c *clientConfig) {
		c.phoneNumberID = id
	}
}

// WithBusinessAccountID sets the WhatsApp Business Account id used by
// template and phone number operations.
func WithBusinessAccountID(id string) Option {
	return func(c *clientConfig) {
		c.businessAcctID = id
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request HTTP timeout. Ignored when a custom
// HTTP client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// NoRetries is the MaxRetries value that turns retry attempts off while
// keeping the rest of the retry configuration in effect. A zero
// MaxRetries means "use the default" instead.
const NoRetries = -1

// RetryConfig configures the retry policy for API calls.
// Zero-valued fields fall back to the defaults: 3 retries, 1s initial
// delay, 30s max delay, 2.0 multiplier.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the
	// first try. Zero selects the default of 3; NoRetries disables
	// retries entirely.
	MaxRetries int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the backoff delay between attempts.
	MaxDelay time.Duration
	// BackoffMultiplier is the factor by which the delay grows.
	BackoffMultiplier float64
	// DisableRetryOnRateLimit turns off retries for rate-limit (429)
	// errors. By default they are retried, honoring the provider's
	// Retry-After hint when present.
	DisableRetryOnRateLimit bool
}

// WithRetryConfig enables retries with the given configuration.
// Without any retry option, API calls are single request/response
// cycles with no retry overhead.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(c *clientConfig) {
		maxRetries := cfg.MaxRetries
		switch {
		case maxRetries == 0:
			maxRetries = api.DefaultRetryConfig().MaxRetries
		case maxRetries < 0:
			maxRetries = 0
		}
		c.retry = &api.RetryConfig{
			MaxRetries:       maxRetries,
			InitialDelay:     cfg.InitialDelay,
			MaxDelay:         cfg.MaxDelay,
			Multiplier:       cfg.BackoffMultiplier,
			RetryOnRateLimit: !cfg.DisableRetryOnRateLimit,
		}
	}
}

// WithRetries enables retries with the default backoff schedule and the
// given number of retry attempts.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		retry := api.DefaultRetryConfig()
		retry.MaxRetries = count
		c.retry = retry
	}
}

// WithRetryOnRateLimit sets whether rate-limit (429) errors are retried.
// Enables default retries when no retry option was given earlier.
func WithRetryOnRateLimit(retry bool) Option {
	return func(c *clientConfig) {
		if c.retry == nil {
			c.retry = api.DefaultRetryConfig()
		}
		c.retry.RetryOnRateLimit = retry
	}
}
