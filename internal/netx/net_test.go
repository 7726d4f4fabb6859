package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload(t *testing.T) {
	photo := []byte("\x89PNG\r\n\x1a\nfake")

	t.Run("ok", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(photo)
		}))
		defer ts.Close()

		data, ct, err := Download(context.Background(), ts.URL+"/p.png?X-Amz-Signature=abc", 1024)
		require.NoError(t, err)
		assert.Equal(t, photo, data)
		assert.Equal(t, "image/png", ct)
	})

	t.Run("status error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer ts.Close()

		_, _, err := Download(context.Background(), ts.URL, 1024)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "download failed: 403"))
	})

	t.Run("too large", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(photo)
		}))
		defer ts.Close()

		_, _, err := Download(context.Background(), ts.URL, 4)
		assert.ErrorContains(t, err, "exceeds")
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		_, _, err := Download(context.Background(), ts.URL, 1024)
		assert.Error(t, err)
	})
}
