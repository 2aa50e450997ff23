package weglide

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchesFor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "WeGlide/1.0 Airport launches", r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/42":
			_, _ = w.Write([]byte(`{"name": "Hahnweide", "stats": {"count": 2310}}`))
		case "/43":
			w.WriteHeader(http.StatusNotFound)
		case "/44":
			_, _ = w.Write([]byte(`{"name": "New Field", "stats": {}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, UserAgent: "WeGlide/1.0 Airport launches"})
	ctx := context.Background()

	count, found, err := client.LaunchesFor(ctx, 42)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2310, count)

	_, found, err = client.LaunchesFor(ctx, 43)
	require.NoError(t, err, "404 is an expected answer")
	assert.False(t, found)

	_, found, err = client.LaunchesFor(ctx, 44)
	require.NoError(t, err, "missing count is an expected answer")
	assert.False(t, found)

	_, _, err = client.LaunchesFor(ctx, 45)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
