package fatsecret

import (
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout      time.Duration
	httpClient   *http.Client
	apiURL       string
	endpoint     oauth1.Endpoint
	accessToken  string
	accessSecret string
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets the underlying HTTP client used for transport. The
// OAuth signing transport is layered on top of it.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithAccessToken resumes a previously authorized session. The client is
// authenticated immediately; no network traffic occurs at construction.
func WithAccessToken(token, secret string) Option {
	return func(o *clientOptions) {
		o.accessToken = token
		o.accessSecret = secret
	}
}

// WithAPIURL overrides the REST endpoint URL. Intended for testing.
func WithAPIURL(apiURL string) Option {
	return func(o *clientOptions) {
		o.apiURL = apiURL
	}
}

// WithEndpoint overrides the OAuth provider endpoint. Intended for testing.
func WithEndpoint(endpoint oauth1.Endpoint) Option {
	return func(o *clientOptions) {
		o.endpoint = endpoint
	}
}
