package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// OllamaClient is a TextModel backed by a local Ollama server.
type OllamaClient struct {
	client *resty.Client
	model  string
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

// NewOllamaClient builds a client for the Ollama generate API. The timeout
// bounds the whole request; a slow local model surfaces as ErrModelUnavailable
// rather than hanging the classify endpoint.
func NewOllamaClient(baseURL, model string, timeout time.Duration) *OllamaClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &OllamaClient{client: client, model: model}
}

// Generate runs a non-streaming completion.
func (o *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	var out ollamaGenerateResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(ollamaGenerateRequest{Model: o.model, Prompt: prompt}).
		SetResult(&out).
		Post("/api/generate")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: ollama returned %s", ErrModelUnavailable, resp.Status())
	}
	return out.Response, nil
}
