package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoPayload struct {
	Message string `json:"message"`
}

type apiError struct {
	Error string `json:"error"`
}

func TestClientGetDecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed/delhi/", r.URL.Path)
		assert.Equal(t, "abc", r.URL.Query().Get("token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	var payload echoPayload
	success, errorBody, statusCode, err := client.Request().
		WithMethod(GET).
		WithPath("/feed/delhi/").
		WithQueryParams(map[string]string{"token": "abc"}).
		WithSuccessResp(&payload).
		Execute()

	require.NoError(t, err)
	assert.Nil(t, errorBody)
	assert.Equal(t, http.StatusOK, statusCode)
	require.NotNil(t, success)
	assert.Equal(t, "ok", payload.Message)
}

func TestClientErrorStatusDecodesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad slug"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	var apiErr apiError
	_, errorBody, statusCode, err := client.Get("/feed/nowhere/", nil, nil, nil, &apiErr)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)
	require.NotNil(t, errorBody)
	assert.Equal(t, "bad slug", apiErr.Error)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"recovered"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	backoff := NewBackoffConfig().
		WithMaxRetries(3).
		WithInitialDelay(time.Millisecond).
		WithMaxDelay(time.Millisecond)

	var payload echoPayload
	_, _, statusCode, err := client.Request().
		WithPath("/flaky").
		WithSuccessResp(&payload).
		WithBackoff(backoff).
		Execute()

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)
	assert.Equal(t, "recovered", payload.Message)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientGetUsesDefaultBackoff(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"recovered"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		DefaultBackoff: NewBackoffConfig().
			WithMaxRetries(3).
			WithInitialDelay(time.Millisecond).
			WithMaxDelay(time.Millisecond),
	})

	var payload echoPayload
	_, _, statusCode, err := client.Get("/flaky", nil, nil, &payload, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)
	assert.Equal(t, "recovered", payload.Message)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		DefaultBackoff: NewBackoffConfig().WithMaxRetries(3).WithInitialDelay(time.Millisecond),
	})

	_, _, statusCode, err := client.Get("/missing", nil, nil, nil, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientSingleAttemptWithoutBackoff(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, _, statusCode, err := client.Get("/down", nil, nil, nil, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, statusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestBuildURLNormalizesPath(t *testing.T) {
	client := NewHttpClient("http://example.test/", ClientOptions{})

	assert.Equal(t, "http://example.test/feed", client.buildURL("feed"))
	assert.Equal(t, "http://example.test/feed", client.buildURL("/feed"))
}

func TestBackoffRetryableStatus(t *testing.T) {
	anyServerError := NewBackoffConfig()
	assert.True(t, anyServerError.retryableStatus(http.StatusBadGateway))
	assert.False(t, anyServerError.retryableStatus(http.StatusTooManyRequests))

	explicit := NewBackoffConfig().WithRetryableStatusCodes(http.StatusTooManyRequests)
	assert.True(t, explicit.retryableStatus(http.StatusTooManyRequests))
	assert.False(t, explicit.retryableStatus(http.StatusInternalServerError))
}
