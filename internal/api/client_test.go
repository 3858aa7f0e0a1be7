package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wacloud/client-go/internal/apierrors"
)

func TestNewClient_RequiresAccessToken(t *testing.T) {
	_, err := NewClient(Config{})
	if !errors.Is(err, apierrors.ErrMissingAccessToken) {
		t.Errorf("NewClient() error = %v, want ErrMissingAccessToken", err)
	}
}

func TestNewClient_DefaultValues(t *testing.T) {
	client, err := NewClient(Config{AccessToken: "test-token"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", client.baseURL, DefaultBaseURL)
	}
	if client.apiVersion != DefaultAPIVersion {
		t.Errorf("apiVersion = %s, want %s", client.apiVersion, DefaultAPIVersion)
	}
	if client.httpClient == nil {
		t.Fatal("httpClient is nil")
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
	if client.retry != nil {
		t.Error("retry should be nil by default")
	}
}

func TestNewClient_CustomValues(t *testing.T) {
	customHTTPClient := &http.Client{Timeout: 60 * time.Second}
	retry := DefaultRetryConfig()

	client, err := NewClient(Config{
		BaseURL:     "https://graph.example.com",
		APIVersion:  "v19.0",
		AccessToken: "test-token",
		HTTPClient:  customHTTPClient,
		Retry:       retry,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.baseURL != "https://graph.example.com" {
		t.Errorf("baseURL = %s", client.baseURL)
	}
	if client.APIVersion() != "v19.0" {
		t.Errorf("APIVersion() = %s, want v19.0", client.APIVersion())
	}
	if client.httpClient != customHTTPClient {
		t.Error("httpClient not set correctly")
	}
	if client.retry != retry {
		t.Error("retry not set correctly")
	}
}

func newTestClient(t *testing.T, handler http.Handler, retry *RetryConfig) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		BaseURL:     server.URL,
		APIVersion:  "v21.0",
		AccessToken: "test-token",
		UserAgent:   "wacloud-go/test",
		Retry:       retry,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client, server
}

func TestClient_Do_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %s, want Bearer test-token", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", got)
		}
		if got := r.Header.Get("User-Agent"); got != "wacloud-go/test" {
			t.Errorf("User-Agent = %s, want wacloud-go/test", got)
		}
		if r.URL.Path != "/v21.0/12345/messages" {
			t.Errorf("path = %s, want /v21.0/12345/messages", r.URL.Path)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if body["messaging_product"] != "whatsapp" {
			t.Errorf("messaging_product = %v, want whatsapp", body["messaging_product"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":[{"id":"wamid.A"}]}`))
	}), nil)

	var result SendMessageResponse
	req := map[string]string{"messaging_product": "whatsapp"}
	if err := client.Do(context.Background(), http.MethodPost, "/12345/messages", req, &result); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if len(result.Messages) != 1 || result.Messages[0].ID != "wamid.A" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestClient_Do_GraphErrorEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"(#131026) Message undeliverable","type":"OAuthException","code":131026,"error_subcode":2494010,"fbtrace_id":"Trace123"}}`))
	}), nil)

	err := client.Do(context.Background(), http.MethodPost, "/12345/messages", map[string]string{}, nil)

	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %T, want *apierrors.APIError", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Code != 131026 {
		t.Errorf("Code = %d, want 131026", apiErr.Code)
	}
	if apiErr.Subcode != 2494010 {
		t.Errorf("Subcode = %d, want 2494010", apiErr.Subcode)
	}
	if apiErr.Type != "OAuthException" {
		t.Errorf("Type = %s, want OAuthException", apiErr.Type)
	}
	if apiErr.TraceID != "Trace123" {
		t.Errorf("TraceID = %s, want Trace123", apiErr.TraceID)
	}
}

func TestClient_Do_NonJSONErrorBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("Bad Gateway"))
	}), nil)

	err := client.Do(context.Background(), http.MethodGet, "/12345", nil, nil)

	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %T, want *apierrors.APIError", err)
	}
	if apiErr.StatusCode != 502 {
		t.Errorf("StatusCode = %d, want 502", apiErr.StatusCode)
	}
	if apiErr.Message != "Bad Gateway" {
		t.Errorf("Message = %q, want raw body", apiErr.Message)
	}
}

func TestClient_Do_RateLimitWithRetryAfter(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "42")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit hit","type":"OAuthException","code":80007}}`))
	}), nil)

	err := client.Do(context.Background(), http.MethodPost, "/12345/messages", map[string]string{}, nil)

	if !errors.Is(err, apierrors.ErrRateLimited) {
		t.Fatalf("Do() error = %v, want rate limit error", err)
	}
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("error is not an *apierrors.APIError")
	}
	if apiErr.RetryAfter != 42*time.Second {
		t.Errorf("RetryAfter = %v, want 42s", apiErr.RetryAfter)
	}
}

func TestClient_Do_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from now on

	client, err := NewClient(Config{
		BaseURL:     server.URL,
		AccessToken: "test-token",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	err = client.Do(context.Background(), http.MethodGet, "/12345", nil, nil)

	var netErr *apierrors.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Do() error = %T, want *apierrors.NetworkError", err)
	}
	if netErr.URL == "" {
		t.Error("NetworkError.URL is empty")
	}
}

func TestClient_Do_RetriesServerErrors(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"message":"temporarily unavailable","code":2}}`))
			return
		}
		w.Write([]byte(`{"messages":[{"id":"wamid.B"}]}`))
	}), &RetryConfig{
		MaxRetries:       3,
		InitialDelay:     time.Millisecond,
		MaxDelay:         4 * time.Millisecond,
		Multiplier:       2.0,
		RetryOnRateLimit: true,
	})

	var result SendMessageResponse
	err := client.Do(context.Background(), http.MethodPost, "/12345/messages", map[string]string{}, &result)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("server saw %d requests, want 3", got)
	}
	if result.Messages[0].ID != "wamid.B" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestClient_Do_NoRetryWithoutConfig(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}), nil)

	err := client.Do(context.Background(), http.MethodGet, "/12345", nil, nil)
	if err == nil {
		t.Fatal("Do() error = nil, want API error")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server saw %d requests, want 1", got)
	}
}

func TestClient_DoDownload(t *testing.T) {
	content := []byte("binary media content")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %s, want Bearer test-token", got)
		}
		w.Write(content)
	}))
	defer server.Close()

	client, err := NewClient(Config{AccessToken: "test-token"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	data, err := client.DoDownload(context.Background(), server.URL+"/cdn/media/abc")
	if err != nil {
		t.Fatalf("DoDownload() error = %v", err)
	}
	if string(data) != string(content) {
		t.Errorf("DoDownload() = %q, want %q", data, content)
	}
}

func TestClient_DoUpload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart form: %v", err)
		}
		if got := r.FormValue("messaging_product"); got != "whatsapp" {
			t.Errorf("messaging_product = %s, want whatsapp", got)
		}
		if got := r.FormValue("type"); got != "image/png" {
			t.Errorf("type = %s, want image/png", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "photo.png" {
			t.Errorf("filename = %s, want photo.png", header.Filename)
		}

		w.Write([]byte(`{"id":"media-123"}`))
	}), nil)

	var result UploadMediaResponse
	err := client.DoUpload(context.Background(), "/12345/media", "photo.png", "image/png", []byte{0x89, 0x50}, &result)
	if err != nil {
		t.Fatalf("DoUpload() error = %v", err)
	}
	if result.ID != "media-123" {
		t.Errorf("ID = %s, want media-123", result.ID)
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Duration
	}{
		{"", 0},
		{"30", 30 * time.Second},
		{"1", time.Second},
		{"0", 0},
		{"-5", 0},
		{"not-a-number", 0},
		{"Wed, 21 Oct 2026 07:28:00 GMT", 0},
	}

	for _, tt := range tests {
		if got := parseRetryAfter(tt.value); got != tt.expected {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.value, got, tt.expected)
		}
	}
}
