package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ravipangali7/luna-alert-engine/internal/config"
	"github.com/stretchr/testify/assert"
)

func newShortenerTestClient(srvURL string) *ShortenerClient {
	cfg := &config.Config{ShortenerURL: srvURL, ShortenerTimeout: time.Second}
	return NewShortenerClient(cfg, newTestLogger())
}

func TestShortener_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("url"))
		w.Write([]byte("https://tinyurl.com/abc123\n"))
	}))
	defer srv.Close()

	short := newShortenerTestClient(srv.URL).Shorten(context.Background(), "https://example.com/very/long")

	assert.Equal(t, "https://tinyurl.com/abc123", short)
}

func TestShortener_FallbackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	longURL := "https://example.com/very/long"
	assert.Equal(t, longURL, newShortenerTestClient(srv.URL).Shorten(context.Background(), longURL))
}

func TestShortener_FallbackOnGarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Error: bad url"))
	}))
	defer srv.Close()

	longURL := "https://example.com/very/long"
	assert.Equal(t, longURL, newShortenerTestClient(srv.URL).Shorten(context.Background(), longURL))
}
