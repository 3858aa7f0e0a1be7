package wacloud

import (
	"net/http"
	"sync"
	"time"

	"github.com/wacloud/client-go/internal/api"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = api.DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Client is a WhatsApp Cloud API client. It is safe for concurrent use.
type Client struct {
	apiClient      *api.Client
	phoneNumberID  string
	businessAcctID string

	mu     sync.RWMutex
	closed bool
}

// New creates a client authenticated with the given access token.
//
// Most operations act on a sender phone number or a WhatsApp Business
// Account; set those once with WithPhoneNumberID and
// WithBusinessAccountID rather than passing them per call.
func New(accessToken string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:    defaultBaseURL,
		apiVersion: defaultAPIVersion,
		timeout:    api.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = defaultHTTPClient(cfg.timeout)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:     cfg.baseURL,
		APIVersion:  cfg.apiVersion,
		AccessToken: accessToken,
		HTTPClient:  httpClient,
		UserAgent:   UserAgent(),
		Retry:       cfg.retry,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{
		apiClient:      apiClient,
		phoneNumberID:  cfg.phoneNumberID,
		businessAcctID: cfg.businessAcctID,
	}, nil
}

// Close marks the client as closed. Subsequent operations return
// ErrClientClosed. Close is idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// checkClosed returns ErrClientClosed when the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// senderID returns the configured phone number id, or a ValidationError
// when it was never set.
func (c *Client) senderID() (string, error) {
	if c.phoneNumberID == "" {
		return "", &ValidationError{Field: "phone_number_id", Message: "phone number id not configured; use WithPhoneNumberID"}
	}
	return c.phoneNumberID, nil
}

// accountID returns the configured business account id, or a
// ValidationError when it was never set.
func (c *Client) accountID() (string, error) {
	if c.businessAcctID == "" {
		return "", &ValidationError{Field: "business_account_id", Message: "business account id not configured; use WithBusinessAccountID"}
	}
	return c.businessAcctID, nil
}
