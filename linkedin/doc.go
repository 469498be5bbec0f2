// Package linkedin provides a client for the LinkScout professional-network
// data API.
//
// The client translates typed method calls into parameterized GET requests,
// retries transient failures with linear backoff, and normalizes failures
// into a small error taxonomy.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := linkedin.NewClient("your-api-key", logger,
//		linkedin.WithTimeout(15*time.Second),
//		linkedin.WithMaxRetries(2),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	profile, err := client.GetProfile(ctx, linkedin.ProfileLookup{Username: "satyanadella"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Response bodies are returned as decoded JSON values (map[string]any,
// []any, etc.); the client performs no schema validation.
//
// # Retry Behaviour
//
// Each attempt is bounded by the configured timeout. Responses in the 4xx
// range are never retried. Server errors (5xx), transport failures, and
// timeouts are retried up to WithMaxRetries times, waiting
// retryDelay*(n+1) after attempt n. The last classified error is surfaced
// when retries run out.
//
// # Error Handling
//
// Runtime failures are exactly one of three kinds:
//
//   - *HTTPError: a non-success status, with status code and response body
//   - *TimeoutError: every attempt exceeded the per-attempt timeout
//   - *NetworkError: a transport-level failure or an unparseable body
//
// Calls that omit a required identifier fail before any network activity
// with an error wrapping ErrMissingIdentifier. Distinguish kinds with
// errors.As and errors.Is:
//
//	var httpErr *linkedin.HTTPError
//	if errors.As(err, &httpErr) && httpErr.IsRateLimited() {
//		// back off
//	}
package linkedin
