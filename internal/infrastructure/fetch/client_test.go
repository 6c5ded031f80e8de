package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/basketwise/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-agent", 5*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, "test-agent", client.userAgent)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Equal(t, int64(maxBodyBytes), client.maxBody)
	assert.False(t, client.debug)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("test-agent", 0)

	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("test-agent", time.Second)

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/zoeken", r.URL.Path)
		assert.Equal(t, "melk", r.URL.Query().Get("query"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "nl-BE", r.Header.Get("Accept-Language"))

		w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	client := NewClient("test-agent", time.Second)
	body, err := client.Fetch(context.Background(), server.URL+"/zoeken?query=melk", map[string]string{
		"Accept-Language": "nl-BE",
	})

	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", string(body))
}

func TestFetch_HeaderOverridesUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom", r.Header.Get("User-Agent"))
	}))
	defer server.Close()

	client := NewClient("test-agent", time.Second)
	_, err := client.Fetch(context.Background(), server.URL, map[string]string{"User-Agent": "custom"})

	require.NoError(t, err)
}

func TestFetch_StatusErrors(t *testing.T) {
	statuses := []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError, http.StatusBadGateway}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			attempts := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts++
				w.WriteHeader(status)
			}))
			defer server.Close()

			client := NewClient("test-agent", time.Second)
			body, err := client.Fetch(context.Background(), server.URL, nil)

			assert.Nil(t, body)
			assert.ErrorIs(t, err, domain.ErrTransport)
			assert.Contains(t, err.Error(), "status")
			assert.Equal(t, 1, attempts, "no retries")
		})
	}
}

func TestFetch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient("test-agent", time.Second)
	_, err := client.Fetch(context.Background(), url, nil)

	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestFetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("test-agent", time.Second)
	_, err := client.Fetch(ctx, server.URL, nil)

	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestFetch_InvalidURL(t *testing.T) {
	client := NewClient("test-agent", time.Second)
	_, err := client.Fetch(context.Background(), "://bad", nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTransport)
}

func TestFetch_BodySizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 16)))
	}))
	defer server.Close()

	t.Run("body at the limit is returned whole", func(t *testing.T) {
		client := NewClient("test-agent", time.Second)
		client.maxBody = 16

		body, err := client.Fetch(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Len(t, body, 16)
	})

	t.Run("body over the limit fails instead of truncating", func(t *testing.T) {
		client := NewClient("test-agent", time.Second)
		client.maxBody = 15

		body, err := client.Fetch(context.Background(), server.URL, nil)
		assert.Nil(t, body)
		assert.ErrorIs(t, err, domain.ErrTransport)
		assert.Contains(t, err.Error(), "exceeds 15 bytes")
	})
}
