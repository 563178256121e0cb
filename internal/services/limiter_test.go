package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/config"
)

func TestNewRateLimitedCompleter_DisabledReturnsNext(t *testing.T) {
	next := newFakeCompleter(nil)
	assert.Same(t, Completer(next), NewRateLimitedCompleter(next, 0))
}

func TestRateLimitedCompleter_PassesThrough(t *testing.T) {
	next := newFakeCompleter(map[string]fakeReply{"m": {text: "ok"}})
	c := NewRateLimitedCompleter(next, 600)

	out, err := c.Complete(context.Background(), CompletionRequest{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 1, next.calls("m"))
}

func TestRateLimitedCompleter_HonoursCancelledContext(t *testing.T) {
	next := newFakeCompleter(map[string]fakeReply{"m": {text: "ok"}})
	c := NewRateLimitedCompleter(next, 1)

	_, err := c.Complete(context.Background(), CompletionRequest{Model: "m"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Complete(ctx, CompletionRequest{Model: "m"})
	assert.ErrorContains(t, err, "rate limiter")
	assert.Equal(t, 1, next.calls("m"))
}

func TestNewCompleter_SelectsProvider(t *testing.T) {
	log := logrus.New()

	c, err := NewCompleter(&config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "k", BaseURL: "http://localhost"}, log)
	require.NoError(t, err)
	assert.IsType(t, &openAICompleter{}, c)

	c, err = NewCompleter(&config.LLMConfig{Provider: config.ProviderGemini}, log)
	require.NoError(t, err)
	assert.IsType(t, &geminiCompleter{}, c)

	c, err = NewCompleter(&config.LLMConfig{Provider: config.ProviderOpenAI, RequestsPerMinute: 60}, log)
	require.NoError(t, err)
	assert.IsType(t, &rateLimitedCompleter{}, c)

	_, err = NewCompleter(&config.LLMConfig{Provider: "other"}, log)
	assert.Error(t, err)
}
