package semantic

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spigell/ats-analyzer/internal/ai"
)

type fakeEmbedder struct {
	mu      sync.Mutex
	vectors map[string][]float32
	err     error
	block   bool
	seen    []string
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	f.seen = append(f.seen, text)
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.vectors[text], nil
}

func TestCosine(t *testing.T) {
	v := []float32{0.3, -1.2, 4}

	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float32{1, 2}, []float32{-1, -2}), 1e-9)
	assert.Zero(t, Cosine(nil, v))
	assert.Zero(t, Cosine(v, []float32{}))
	assert.Zero(t, Cosine([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Zero(t, Cosine([]float32{0, 0}, []float32{1, 2}))
}

func TestScoreScalesSimilarity(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"resume": {1, 1},
		"jd":     {1, 0},
	}}

	got := New(embedder, time.Second, zaptest.NewLogger(t)).Score(context.Background(), "resume", "jd")

	assert.InDelta(t, 70.71, got, 0.01)
}

func TestScoreTruncatesInput(t *testing.T) {
	embedder := &fakeEmbedder{}
	long := strings.Repeat("й", 1500)

	New(embedder, 0, nil).Score(context.Background(), long, "jd")

	require.Len(t, embedder.seen, 2)
	assert.Contains(t, embedder.seen, strings.Repeat("й", maxChars))
}

func TestScoreNegativeSimilarityIsZero(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 2},
		"b": {-1, -2},
	}}

	assert.Zero(t, New(embedder, 0, nil).Score(context.Background(), "a", "b"))
}

func TestScoreDegradesToZero(t *testing.T) {
	tests := []struct {
		name     string
		embedder ai.Embedder
		timeout  time.Duration
	}{
		{"nil embedder", nil, 0},
		{"nop embedder", ai.NopEmbedder{}, 0},
		{"error", &fakeEmbedder{err: errors.New("network down")}, 0},
		{"timeout", &fakeEmbedder{block: true}, 10 * time.Millisecond},
		{"empty vectors", &fakeEmbedder{vectors: map[string][]float32{}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.embedder, tt.timeout, zaptest.NewLogger(t))
			assert.Zero(t, s.Score(context.Background(), "resume", "jd"))
		})
	}
}
