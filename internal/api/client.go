package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/wacloud/client-go/internal/apierrors"
)

// Default transport settings.
const (
	DefaultBaseURL    = "https://graph.facebook.com"
	DefaultAPIVersion = "v21.0"
	DefaultTimeout    = 30 * time.Second
)

// Config configures the API client.
type Config struct {
	// BaseURL is the Graph API origin. Defaults to DefaultBaseURL.
	BaseURL string
	// APIVersion is the version path segment (e.g. "v21.0").
	APIVersion string
	// AccessToken is the bearer credential for every request.
	AccessToken string
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
	// UserAgent is sent with every request.
	UserAgent string
	// Retry configures the retry policy. Nil disables retries: each
	// operation is a single request/response cycle.
	Retry *RetryConfig
}

// Client is the HTTP API client. It performs single request/response
// cycles against the Graph API, wrapped by the retry policy, and raises
// only apierrors taxonomy errors on failure.
type Client struct {
	baseURL    string
	apiVersion string
	token      string
	userAgent  string
	httpClient *http.Client
	retry      *RetryConfig
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, apierrors.ErrMissingAccessToken
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		apiVersion: cfg.APIVersion,
		token:      cfg.AccessToken,
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
		retry:      cfg.Retry,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.apiVersion == "" {
		c.apiVersion = DefaultAPIVersion
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return c, nil
}

// APIVersion returns the configured version path segment.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// Do performs a JSON request against a versioned API path ("/<node>/...").
// The body, when non-nil, is marshaled to JSON; the response, when result
// is non-nil, is decoded into it. Failures surface as taxonomy errors:
// *apierrors.APIError for non-2xx responses, *apierrors.NetworkError for
// transport failures.
func (c *Client) Do(ctx context.Context, method, path string, body, result interface{}) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &apierrors.ValidationError{Message: fmt.Sprintf("marshal request body: %v", err)}
		}
		payload = data
	}

	return c.retry.Do(ctx, func(ctx context.Context) error {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}
		return c.roundTrip(ctx, method, c.versionedURL(path), "application/json", bodyReader, result)
	})
}

// DoUpload performs a multipart/form-data upload against a versioned API
// path. Used by the media endpoints.
func (c *Client) DoUpload(ctx context.Context, path, filename, contentType string, data []byte, result interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("messaging_product", "whatsapp"); err != nil {
		return &apierrors.ValidationError{Message: fmt.Sprintf("build upload form: %v", err)}
	}
	if err := mw.WriteField("type", contentType); err != nil {
		return &apierrors.ValidationError{Message: fmt.Sprintf("build upload form: %v", err)}
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return &apierrors.ValidationError{Message: fmt.Sprintf("build upload form: %v", err)}
	}
	if _, err := fw.Write(data); err != nil {
		return &apierrors.ValidationError{Message: fmt.Sprintf("build upload form: %v", err)}
	}
	if err := mw.Close(); err != nil {
		return &apierrors.ValidationError{Message: fmt.Sprintf("build upload form: %v", err)}
	}
	form := buf.Bytes()

	return c.retry.Do(ctx, func(ctx context.Context) error {
		return c.roundTrip(ctx, http.MethodPost, c.versionedURL(path), mw.FormDataContentType(), bytes.NewReader(form), result)
	})
}

// DoDownload fetches raw bytes from an absolute URL (media CDN links are
// returned by the API outside the versioned path space). The bearer token
// is still required by the CDN.
func (c *Client) DoDownload(ctx context.Context, url string) ([]byte, error) {
	var data []byte
	err := c.retry.Do(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return &apierrors.ValidationError{Message: fmt.Sprintf("create request: %v", err)}
		}
		c.setCommonHeaders(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &apierrors.NetworkError{Err: err, URL: url}
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return parseErrorResponse(resp)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return &apierrors.NetworkError{Err: err, URL: url}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// versionedURL joins the base URL, version segment and node path.
func (c *Client) versionedURL(path string) string {
	return c.baseURL + "/" + c.apiVersion + path
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}

// roundTrip performs exactly one request/response cycle.
func (c *Client) roundTrip(ctx context.Context, method, url, contentType string, body io.Reader, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &apierrors.ValidationError{Message: fmt.Sprintf("create request: %v", err)}
	}

	c.setCommonHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apierrors.NetworkError{Err: err, URL: url}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &apierrors.NetworkError{Err: fmt.Errorf("decode response: %w", err), URL: url}
		}
	}

	return nil
}

// graphErrorEnvelope is the Graph API error response shape.
type graphErrorEnvelope struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		Subcode   int    `json:"error_subcode"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}

// parseErrorResponse converts a non-2xx response into an *apierrors.APIError.
// Every Transport failure path lands in the error taxonomy; nothing
// untyped escapes to the retry policy.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	apiErr := &apierrors.APIError{
		StatusCode: resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}

	var envelope graphErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
		apiErr.Type = envelope.Error.Type
		apiErr.Code = envelope.Error.Code
		apiErr.Subcode = envelope.Error.Subcode
		apiErr.TraceID = envelope.Error.FBTraceID
	} else {
		apiErr.Message = string(body)
	}

	return apiErr
}

// parseRetryAfter parses a Retry-After header value in seconds. The HTTP
// date form is not used by the provider and is ignored.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
