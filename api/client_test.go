package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func TestClientPostSetsDefaultHeaders(t *testing.T) {
	var seen http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second, nil, zap.NewNop())

	result, err := client.Post("/api/upload", []byte("body"), "multipart/form-data; boundary=x")
	require.NoError(t, err)

	assert.Equal(t, 200, result.Status)
	assert.Equal(t, "multipart/form-data; boundary=x", seen.Get("Content-Type"))
	assert.Equal(t, "application/json", seen.Get("Accept"))
	assert.NotEmpty(t, seen.Get("x-request-id"))
}

func TestClientPostFreshRequestIDPerCall(t *testing.T) {
	var ids []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("x-request-id"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second, nil, zap.NewNop())

	_, err := client.Post("/api/publish", nil, "application/json")
	require.NoError(t, err)
	_, err = client.Post("/api/publish", nil, "application/json")
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestClientPostCallerHeadersWin(t *testing.T) {
	var seen http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	headers := map[string]string{
		"x-request-id":  "fixed-id",
		"Content-Type":  "application/x-custom",
		"Authorization": "Bearer token",
	}
	client := NewClient(server.URL, 10*time.Second, headers, zap.NewNop())

	_, err := client.Post("/api/publish", nil, "application/json")
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", seen.Get("x-request-id"))
	assert.Equal(t, "application/x-custom", seen.Get("Content-Type"))
	assert.Equal(t, "Bearer token", seen.Get("Authorization"))
}

func TestClientPostErrorStatusIsStillAResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-request-id", "req-9")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success": false, "error": "bad title"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second, nil, zap.NewNop())

	result, err := client.Post("/api/upload", nil, "application/json")
	require.NoError(t, err)

	assert.Equal(t, 422, result.Status)
	assert.Equal(t, "req-9", result.Headers["x-request-id"])
	assert.Equal(t, "bad title", result.Payload.Envelope().Error)
}

func TestClientPostLowercasesResponseHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", "req-3")
		w.Header().Set("X-Custom-Header", "v")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second, nil, zap.NewNop())

	result, err := client.Post("/api/publish", nil, "application/json")
	require.NoError(t, err)

	assert.Equal(t, "req-3", result.Headers["x-request-id"])
	assert.Equal(t, "v", result.Headers["x-custom-header"])
}

func TestClientPostTrimsTrailingSlash(t *testing.T) {
	var path string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", 10*time.Second, nil, zap.NewNop())

	_, err := client.Post("/api/upload", nil, "application/json")
	require.NoError(t, err)

	assert.Equal(t, "/api/upload", path)
}

func TestClientPostTransportFaultPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	server.Close()

	client := NewClient(server.URL, time.Second, nil, zap.NewNop())

	result, err := client.Post("/api/upload", nil, "application/json")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestClientPostSendsBody(t *testing.T) {
	var body []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second, nil, zap.NewNop())

	_, err := client.Post("/api/publish", []byte(`{"title":"t"}`), "application/json")
	require.NoError(t, err)

	assert.Equal(t, `{"title":"t"}`, string(body))
}
