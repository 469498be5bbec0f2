package linkedin

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production LinkScout API host.
const DefaultBaseURL = "https://api.linkscout.dev/v1"

// Version identifies the client on the wire via the User-Agent header.
const Version = "1.2.0"

// Client wraps the LinkScout data API. It holds no mutable state beyond
// the configuration fixed at construction, so a single Client may be used
// from any number of goroutines.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new LinkScout client. The API key is required and
// validated before any network activity.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    trimTrailingSlash(options.baseURL),
		apiKey:     apiKey,
		timeout:    options.timeout,
		maxRetries: options.maxRetries,
		retryDelay: options.retryDelay,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the configured API host with any trailing slash removed.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
