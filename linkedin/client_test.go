package linkedin

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		apiKey  string
		wantErr error
	}{
		{
			name:   "valid config",
			apiKey: "test-key",
		},
		{
			name:    "missing API key",
			apiKey:  "",
			wantErr: ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, logger)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient("test-key", zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, 30*time.Second, client.timeout)
	assert.Equal(t, 3, client.maxRetries)
	assert.Equal(t, time.Second, client.retryDelay)
	assert.Equal(t, "linkscout/"+Version, client.userAgent)
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with base URL strips trailing slash", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithBaseURL("https://example.com/v1/"))
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/v1", client.BaseURL())
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.timeout)
	})

	t.Run("with max retries zero disables retry", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithMaxRetries(0))
		require.NoError(t, err)
		assert.Equal(t, 0, client.maxRetries)
	})

	t.Run("negative retries ignored", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithMaxRetries(-1))
		require.NoError(t, err)
		assert.Equal(t, 3, client.maxRetries)
	})

	t.Run("with retry delay", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithRetryDelay(250*time.Millisecond))
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, client.retryDelay)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{}
		client, err := NewClient("test-key", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Same(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithUserAgent("custom/0.1"))
		require.NoError(t, err)
		assert.Equal(t, "custom/0.1", client.userAgent)
	})
}
