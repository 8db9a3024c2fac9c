// Package semantic scores résumé/job-description similarity from embeddings.
package semantic

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/ats-analyzer/internal/ai"
	"github.com/spigell/ats-analyzer/internal/logger"
	"github.com/spigell/ats-analyzer/internal/utils"
)

// maxChars is how much of each text is embedded.
const maxChars = 1000

// Scorer turns two texts into a 0-100 similarity score.
type Scorer struct {
	embedder ai.Embedder
	timeout  time.Duration
	logger   *zap.Logger
}

// New creates a Scorer. A nil embedder behaves like ai.NopEmbedder and a
// non-positive timeout disables the deadline.
func New(embedder ai.Embedder, timeout time.Duration, log *zap.Logger) *Scorer {
	if embedder == nil {
		embedder = ai.NopEmbedder{}
	}
	return &Scorer{
		embedder: embedder,
		timeout:  timeout,
		logger:   logger.OrNop(log),
	}
}

// Score returns cosine similarity scaled to [0, 100]. Any failure yields 0.
func (s *Scorer) Score(ctx context.Context, resume, jobDescription string) float64 {
	vectors, err := s.embedBoth(ctx, utils.Head(resume, maxChars), utils.Head(jobDescription, maxChars))
	if err != nil {
		s.logger.Warn("semantic score unavailable, falling back to 0", zap.Error(err))
		return 0
	}

	score := Cosine(vectors[0], vectors[1]) * 100
	score = math.Max(0, math.Min(100, score))

	s.logger.Debug("semantic score computed",
		zap.Int("dimensions", len(vectors[0])),
		zap.Float64("score", score),
	)

	return score
}

func (s *Scorer) embedBoth(ctx context.Context, texts ...string) ([][]float32, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	vectors := make([][]float32, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	for i, text := range texts {
		g.Go(func() error {
			v, err := s.embedder.Embed(gctx, text)
			if err != nil {
				return fmt.Errorf("embed text %d: %w", i, err)
			}
			vectors[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// Cosine returns the cosine similarity of a and b, or 0 when the vectors are
// empty, differ in length or have zero norm.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
