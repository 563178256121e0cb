package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

type geminiCompleter struct {
	client *genai.Client
}

// NewGeminiCompleter builds a Completer on the Gemini API. With an empty key
// no client is created and every call fails with ErrMissingCredential.
func NewGeminiCompleter(apiKey, baseURL string) (Completer, error) {
	if apiKey == "" {
		return &geminiCompleter{}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
		HTTPClient: &http.Client{
			Transport: upstreamErrorTransport{next: http.DefaultTransport},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiCompleter{client: client}, nil
}

// Complete implements Completer.
func (g *geminiCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if g.client == nil {
		return "", ErrMissingCredential
	}

	temperature := float32(req.Temperature)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	if req.JSONMode {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.UserPrompt), cfg)
	if err != nil {
		var upstreamErr *UpstreamError
		if errors.As(err, &upstreamErr) {
			return "", upstreamErr
		}
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{StatusCode: apiErr.Code, Body: apiErr.Message}
		}
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("model %s: %w", req.Model, errEmptyCompletion)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("model %s: %w", req.Model, errEmptyCompletion)
	}

	return text, nil
}

// upstreamErrorTransport keeps non-2xx bodies verbatim; genai would otherwise
// reduce them to the parsed message.
type upstreamErrorTransport struct {
	next http.RoundTripper
}

func (t upstreamErrorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	return checkUpstreamStatus(res)
}
