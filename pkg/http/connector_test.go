package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoBody struct {
	Value string `json:"value"`
}

func newTestConnector(baseURL string) *Connector {
	return NewConnector(&ConnectorConfig{BaseURL: baseURL, Logger: zap.NewNop()}, WithRequestLogging())
}

func TestDoRequest_SendsJSONAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/echo", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"value":"ping"}`, string(raw))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":"pong"}`))
	}))
	defer srv.Close()

	var out echoBody
	err := newTestConnector(srv.URL).DoRequest(context.Background(), http.MethodPost, "/echo",
		&echoBody{Value: "ping"}, &out, WithHeader("X-Test", "yes"))
	require.NoError(t, err)
	assert.Equal(t, "pong", out.Value)
}

func TestDoRequest_OverrideURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/other", r.URL.Path)
		w.Write([]byte(`{"value":"ok"}`))
	}))
	defer srv.Close()

	var out echoBody
	err := newTestConnector("http://unused.invalid").DoRequest(context.Background(), http.MethodGet, "/ignored",
		nil, &out, WithURL(srv.URL+"/other"))
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Value)
}

func TestDoRequest_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	err := newTestConnector(srv.URL).DoRequest(context.Background(), http.MethodPost, "/", nil, &echoBody{})

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "upstream down", httpErr.Message)
}

func TestDoRequest_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestConnector(url).DoRequest(context.Background(), http.MethodPost, "/", nil, &echoBody{})

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.NotNil(t, errors.Unwrap(err))
}

func TestDoRequest_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "whitespace body", body: "  \n"},
		{name: "not json", body: "<html>oops</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestConnector(srv.URL).DoRequest(context.Background(), http.MethodPost, "/", nil, &echoBody{})

			var decErr *DecodeError
			require.True(t, errors.As(err, &decErr), "got %v", err)
		})
	}
}

func TestDoRequest_NilResponseBodyIgnoresContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestConnector(srv.URL).DoRequest(context.Background(), http.MethodDelete, "/", nil, nil)
	require.NoError(t, err)
}

type countingTransport struct {
	calls int
	next  http.RoundTripper
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	return c.next.RoundTrip(req)
}

func TestWithTransport_WrapsClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(echoBody{Value: "wrapped"})
	}))
	defer srv.Close()

	counter := &countingTransport{}
	conn := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()},
		WithBaseTransport(srv.Client().Transport),
		WithTransport(func(rt http.RoundTripper) http.RoundTripper {
			counter.next = rt
			return counter
		}),
	)

	var out echoBody
	require.NoError(t, conn.DoRequest(context.Background(), http.MethodGet, "/", nil, &out))
	assert.Equal(t, "wrapped", out.Value)
	assert.Equal(t, 1, counter.calls)
}

func TestDefaultHTTPConfig_NoRequestTimeouts(t *testing.T) {
	cfg := defaultHTTPConfig()
	assert.Zero(t, cfg.requestTimeout)
	assert.Zero(t, cfg.responseHeaderTimeout)

	client := newClient()
	assert.Zero(t, client.Timeout)
}
