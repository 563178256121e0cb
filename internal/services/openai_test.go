package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatCompletionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1,
		"model":   "test-model",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(body)
}

func TestOpenAICompleter_SendsChatCompletion(t *testing.T) {
	var captured map[string]any
	var auth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		auth = r.Header.Get("Authorization")

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, chatCompletionBody(`{"overallScore": 50}`))
	}))
	defer ts.Close()

	c := NewOpenAICompleter("sk-test-key", ts.URL+"/v1")
	out, err := c.Complete(context.Background(), CompletionRequest{
		Model:        "openai/gpt-4o-mini",
		SystemPrompt: "system",
		UserPrompt:   "user",
		JSONMode:     true,
		Temperature:  0.2,
		MaxTokens:    100,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"overallScore": 50}`, out)
	assert.Equal(t, "Bearer sk-test-key", auth)
	assert.Equal(t, "openai/gpt-4o-mini", captured["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, captured["response_format"])

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestOpenAICompleter_OmitsResponseFormatForText(t *testing.T) {
	var captured map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, chatCompletionBody("Dear team"))
	}))
	defer ts.Close()

	out, err := NewOpenAICompleter("k", ts.URL).Complete(context.Background(), CompletionRequest{
		Model:      "m",
		UserPrompt: "write",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dear team", out)
	assert.NotContains(t, captured, "response_format")
}

func TestOpenAICompleter_UpstreamErrorIsVerbatimAndNotRetried(t *testing.T) {
	var hits atomic.Int32
	const body = `{"error":{"message":"Provider returned error","code":500}}`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, body)
	}))
	defer ts.Close()

	_, err := NewOpenAICompleter("k", ts.URL).Complete(context.Background(), CompletionRequest{
		Model:      "m",
		UserPrompt: "hi",
	})
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusInternalServerError, upstreamErr.StatusCode)
	assert.Equal(t, body, upstreamErr.Body)
	assert.Equal(t, int32(1), hits.Load())
}

func TestOpenAICompleter_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`)
	}))
	defer ts.Close()

	_, err := NewOpenAICompleter("k", ts.URL).Complete(context.Background(), CompletionRequest{Model: "m", UserPrompt: "hi"})
	assert.ErrorIs(t, err, errEmptyCompletion)
}
