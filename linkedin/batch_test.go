package linkedin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchGetProfiles(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		username := r.URL.Query().Get("username")
		if username == "broken" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"username":"` + username + `"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	results, err := client.BatchGetProfiles(context.Background(), []string{"alpha", "broken", "beta"}, 2)
	require.NoError(t, err)

	assert.Len(t, results, 2, "failed lookups are skipped, not fatal")
	assert.Equal(t, int32(3), requests.Load())

	alpha := results["alpha"].(map[string]any)
	assert.Equal(t, "alpha", alpha["username"])
	_, ok := results["broken"]
	assert.False(t, ok)
}

func TestBatchGetProfilesEmptyInput(t *testing.T) {
	client := newTestClient(t, "http://localhost:1")
	results, err := client.BatchGetProfiles(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBatchGetProfilesCancelled(t *testing.T) {
	client := newTestClient(t, "http://localhost:1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.BatchGetProfiles(ctx, []string{"a", "b"}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}