package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/futig/blog-generator/internal/config"
	"github.com/futig/blog-generator/internal/entity"
	pkghttp "github.com/futig/blog-generator/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConnector(url string) *Connector {
	return NewConnector(config.GeneratorConnectorConfig{
		EndpointURL: url,
		ConnTimeout: time.Second,
	}, zap.NewNop())
}

func TestGenerateBlog_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"prompt": "Data Science vs Machine Learning"}, body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"generated_text":"A","summary":"B","sentiment":"C","category":"D","image_url":"http://x/y.png"}`))
	}))
	defer srv.Close()

	res, err := newConnector(srv.URL).GenerateBlog(context.Background(),
		&entity.GenerateBlogRequest{Prompt: "Data Science vs Machine Learning"})
	require.NoError(t, err)
	assert.Equal(t, &entity.BlogResult{
		GeneratedText: "A",
		Summary:       "B",
		Sentiment:     "C",
		Category:      "D",
		ImageURL:      "http://x/y.png",
	}, res)
}

func TestGenerateBlog_EmptyStringsArePresent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generated_text":"","summary":"","sentiment":"","category":"","image_url":""}`))
	}))
	defer srv.Close()

	res, err := newConnector(srv.URL).GenerateBlog(context.Background(), &entity.GenerateBlogRequest{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, &entity.BlogResult{}, res)
}

func TestGenerateBlog_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"boom"}`},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, body: ""},
		{name: "malformed json", status: http.StatusOK, body: `{"generated_text":`},
		{name: "empty body", status: http.StatusOK, body: ""},
		{name: "missing field", status: http.StatusOK, body: `{"generated_text":"A","summary":"B","sentiment":"C","category":"D"}`, wantErr: entity.ErrMalformedResponse},
		{name: "null field", status: http.StatusOK, body: `{"generated_text":null,"summary":"B","sentiment":"C","category":"D","image_url":"u"}`, wantErr: entity.ErrMalformedResponse},
		{name: "wrong type", status: http.StatusOK, body: `{"generated_text":1,"summary":"B","sentiment":"C","category":"D","image_url":"u"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			res, err := newConnector(srv.URL).GenerateBlog(context.Background(), &entity.GenerateBlogRequest{Prompt: "p"})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, entity.ErrRequestFailed)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateBlog_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newConnector(url).GenerateBlog(context.Background(), &entity.GenerateBlogRequest{Prompt: "p"})
	require.ErrorIs(t, err, entity.ErrRequestFailed)

	var netErr *pkghttp.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestMockConnector_GenerateBlog(t *testing.T) {
	res, err := NewMockConnector(zap.NewNop(), 0).GenerateBlog(context.Background(), &entity.GenerateBlogRequest{Prompt: "Go"})
	require.NoError(t, err)
	assert.Contains(t, res.GeneratedText, "Go")
	assert.NotEmpty(t, res.Summary)
	assert.NotEmpty(t, res.Sentiment)
	assert.NotEmpty(t, res.Category)
	assert.NotEmpty(t, res.ImageURL)
}

func TestMockConnector_ContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMockConnector(zap.NewNop(), time.Hour).GenerateBlog(ctx, &entity.GenerateBlogRequest{Prompt: "Go"})
	require.ErrorIs(t, err, entity.ErrRequestFailed)
	assert.ErrorIs(t, err, context.Canceled)
}
