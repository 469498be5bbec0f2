package linkedin

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	userAgent  string
	httpClient *http.Client
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL:    DefaultBaseURL,
		timeout:    30 * time.Second,
		maxRetries: 3,
		retryDelay: time.Second,
		userAgent:  "linkscout/" + Version,
	}
}

// WithBaseURL overrides the default API host.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMaxRetries sets the maximum number of retry attempts after the
// initial one. Zero disables retries.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.maxRetries = retries
		}
	}
}

// WithRetryDelay sets the base delay between retry attempts. The actual
// delay grows linearly with the attempt number.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		if delay > 0 {
			o.retryDelay = delay
		}
	}
}

// WithUserAgent sets a custom client identifier header value.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithHTTPClient supplies a custom HTTP client, e.g. with a proxy or a
// tuned transport. The per-attempt timeout is still enforced through the
// request context, not the client's Timeout field.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}
