package intelligence

import (
	"context"
	"errors"
)

// ErrModelUnavailable covers every failure mode of a text model backend:
// connection refused, timeout, bad response. Callers fall back to the keyword
// classifier on this error and do not need to distinguish causes.
var ErrModelUnavailable = errors.New("text model unavailable")

// TextModel is a minimal text-generation capability. Both the Gemini and
// Ollama backends implement it.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
