package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StubTextGenerator dipakai test yang butuh TextGenerator tanpa jaringan.
type StubTextGenerator struct {
	Output string
	Err    error

	LastTask  string
	LastInput string
}

func (s *StubTextGenerator) Generate(_ context.Context, task string, input string) (string, error) {
	s.LastTask = task
	s.LastInput = input
	return s.Output, s.Err
}

func newTestGenerator(url string) *HTTPTextGenerator {
	return &HTTPTextGenerator{
		Client: &http.Client{Timeout: 5 * time.Second},
		URL:    url,
		APIKey: "test-key",
	}
}

func TestHTTPTextGeneratorSendsTaskAndAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/generate", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, TaskSummary, req.Task)
		assert.Equal(t, "materi kuliah", req.Input)

		_ = json.NewEncoder(w).Encode(generateResponse{Output: "ringkasan"})
	}))
	defer srv.Close()

	out, err := newTestGenerator(srv.URL).Generate(context.Background(), TaskSummary, "materi kuliah")
	require.NoError(t, err)
	assert.Equal(t, "ringkasan", out)
}

func TestHTTPTextGeneratorNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestGenerator(srv.URL).Generate(context.Background(), TaskQuiz, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestHTTPTextGeneratorServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{Error: "input terlalu panjang"})
	}))
	defer srv.Close()

	_, err := newTestGenerator(srv.URL).Generate(context.Background(), TaskFlashcards, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input terlalu panjang")
}

func TestStubTextGeneratorRecordsCall(t *testing.T) {
	stub := &StubTextGenerator{Output: "ok"}

	out, err := stub.Generate(context.Background(), TaskMindMap, "bab 3")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, TaskMindMap, stub.LastTask)
	assert.Equal(t, "bab 3", stub.LastInput)
}
