package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotBody chatRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Keep going.  "}}]}`))
	}))
	defer server.Close()

	client := New(Config{APIKey: "sk-test", BaseURL: server.URL, Model: "gpt-4o"})
	text, err := client.Complete(context.Background(), CompletionRequest{
		System: "be inspiring",
		Prompt: "a quote about grit",
	})
	require.NoError(t, err)
	assert.Equal(t, "  Keep going.  ", text)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o", gotBody.Model)
	assert.Equal(t, 150, gotBody.MaxTokens)
	assert.InDelta(t, 0.7, gotBody.Temperature, 0.001)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "a quote about grit", gotBody.Messages[1].Content)
}

func TestCompletePerRequestOverrides(t *testing.T) {
	var gotBody chatRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	client := New(Config{APIKey: "sk-server", BaseURL: server.URL, Model: "gpt-4o"})
	_, err := client.Complete(context.Background(), CompletionRequest{
		Prompt: "hi",
		Model:  "gpt-4o-mini",
		APIKey: "sk-user",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-user", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody.Model)
}

func TestCompleteMissingAPIKey(t *testing.T) {
	client := New(Config{BaseURL: "http://localhost:0"})

	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestCompleteProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	client := New(Config{APIKey: "sk-bad", BaseURL: server.URL})
	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := New(Config{APIKey: "sk-test", BaseURL: server.URL})
	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	assert.Error(t, err)
}
