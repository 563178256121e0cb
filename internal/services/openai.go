package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

type openAICompleter struct {
	client openai.Client
}

// NewOpenAICompleter talks to any OpenAI-compatible chat-completions API.
// The key is sent as a bearer token and the client never retries on its own.
func NewOpenAICompleter(apiKey, baseURL string) Completer {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithMiddleware(captureUpstreamError),
	)

	return &openAICompleter{client: client}
}

// Complete implements Completer.
func (o *openAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.UserPrompt))

	params := openai.ChatCompletionNewParams{
		Model:       req.Model,
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}
	if req.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("model %s: %w", req.Model, errEmptyCompletion)
	}

	return resp.Choices[0].Message.Content, nil
}

// captureUpstreamError turns any non-2xx reply into an *UpstreamError that
// carries the raw body, whatever shape the provider uses for errors.
func captureUpstreamError(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	res, err := next(req)
	if err != nil {
		return nil, err
	}
	return checkUpstreamStatus(res)
}
