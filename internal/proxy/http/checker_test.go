package httpproxy_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/common/logs/mocks"
	"github.com/JulianoL13/guincho-scraper/internal/proxy"
	httpproxy "github.com/JulianoL13/guincho-scraper/internal/proxy/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProxy answers plain-HTTP proxy requests itself and enforces basic auth when creds is set.
func fakeProxy(t *testing.T, creds string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if creds != "" {
			want := "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
			if r.Header.Get("Proxy-Authorization") != want {
				w.WriteHeader(http.StatusProxyAuthRequired)
				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func endpointFor(t *testing.T, srv *httptest.Server, userInfo string) proxy.Endpoint {
	t.Helper()
	raw := srv.URL
	if userInfo != "" {
		raw = strings.Replace(raw, "http://", "http://"+userInfo+"@", 1)
	}
	e, err := proxy.ParseEndpoint(raw)
	require.NoError(t, err)
	return e
}

func TestChecker_Check(t *testing.T) {
	t.Run("live proxy", func(t *testing.T) {
		srv := fakeProxy(t, "")
		c := httpproxy.NewChecker("http://example.test/", 2*time.Second, mocks.LoggerMock{})

		out := c.Check(context.Background(), endpointFor(t, srv, ""))

		assert.True(t, out.Success)
		assert.NoError(t, out.Error)
	})

	t.Run("sends credentials", func(t *testing.T) {
		srv := fakeProxy(t, "user:secret")
		c := httpproxy.NewChecker("http://example.test/", 2*time.Second, mocks.LoggerMock{})

		out := c.Check(context.Background(), endpointFor(t, srv, "user:secret"))
		assert.True(t, out.Success)

		out = c.Check(context.Background(), endpointFor(t, srv, "user:wrong"))
		assert.False(t, out.Success)
		assert.ErrorContains(t, out.Error, "407")
	})

	t.Run("unreachable proxy", func(t *testing.T) {
		srv := fakeProxy(t, "")
		e := endpointFor(t, srv, "")
		srv.Close()

		c := httpproxy.NewChecker("http://example.test/", time.Second, mocks.LoggerMock{})
		out := c.Check(context.Background(), e)

		assert.False(t, out.Success)
		assert.Error(t, out.Error)
	})
}
