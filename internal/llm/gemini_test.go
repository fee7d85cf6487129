package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "apnadost/backend/internal/errors"
)

// TestGeminiProvider verifies that the client sends the expected request shape
// and handles the full range of responses from the generation endpoint,
// using an httptest server as a stand-in for the real API.
func TestGeminiProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var capturedKey, capturedPrompt string
		var requestCount int

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCount++
			capturedKey = r.URL.Query().Get("key")

			var req generateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Contents, 1)
			require.Len(t, req.Contents[0].Parts, 1)
			capturedPrompt = req.Contents[0].Parts[0].Text

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hi there! 😊"}]}}]}`))
			assert.NoError(t, err)
		}))
		defer server.Close()

		provider := NewGeminiProvider(server.URL, "test-key")

		text, err := provider.Generate(ctx, "system: sys\nuser: hello\nassistant:")

		require.NoError(t, err)
		assert.Equal(t, "Hi there! 😊", text)
		assert.Equal(t, "test-key", capturedKey)
		assert.Equal(t, "system: sys\nuser: hello\nassistant:", capturedPrompt)
		assert.Equal(t, 1, requestCount)
	})

	t.Run("MissingCandidatesIsEmptyReply", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
		}))
		defer server.Close()

		provider := NewGeminiProvider(server.URL, "test-key")

		text, err := provider.Generate(ctx, "prompt")

		// Malformed-but-200 is a valid outcome, not an error.
		require.NoError(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("MissingPartsIsEmptyReply", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[{"content":{}}]}`))
		}))
		defer server.Close()

		provider := NewGeminiProvider(server.URL, "test-key")

		text, err := provider.Generate(ctx, "prompt")

		require.NoError(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("ServerErrorIsSingleGenerationError", func(t *testing.T) {
		var requestCount int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCount++
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"message":"quota exhausted"}}`))
		}))
		defer server.Close()

		provider := NewGeminiProvider(server.URL, "test-key")

		_, err := provider.Generate(ctx, "prompt")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrGeneration)
		// The upstream body is preserved for operator diagnostics.
		assert.ErrorContains(t, err, "quota exhausted")
		// Exactly one attempt, zero retries.
		assert.Equal(t, 1, requestCount)
	})

	t.Run("TimeoutIsGenerationError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		provider := &geminiProvider{
			client: &http.Client{Timeout: 20 * time.Millisecond},
			url:    server.URL,
			apiKey: "test-key",
		}

		_, err := provider.Generate(ctx, "prompt")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrGeneration)
	})

	t.Run("MissingURLIsConfigurationError", func(t *testing.T) {
		provider := NewGeminiProvider("", "test-key")

		_, err := provider.Generate(ctx, "prompt")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})
}
