// Package ai declares the external capabilities the analysis pipeline can
// use. Every capability has a null implementation so the pipeline can be
// built without credentials.
package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by the null capability implementations.
var ErrUnavailable = errors.New("ai capability is not configured")

// TextGenerator produces model output for a prompt. The output is expected
// to be JSON, possibly wrapped in a markdown code fence.
type TextGenerator interface {
	GenerateStructuredText(ctx context.Context, prompt string) (string, error)
}

// Embedder turns text into a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// NopGenerator is the TextGenerator used when no model is configured.
type NopGenerator struct{}

func (NopGenerator) GenerateStructuredText(context.Context, string) (string, error) {
	return "", ErrUnavailable
}

// NopEmbedder is the Embedder used when no model is configured.
type NopEmbedder struct{}

func (NopEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, ErrUnavailable
}
