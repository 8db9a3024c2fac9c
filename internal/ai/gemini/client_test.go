package gemini

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	mu         sync.Mutex
	generate   []fakeResult
	embed      []fakeResult
	calls      int
	lastConfig *genai.GenerateContentConfig
	lastModel  string
}

type fakeResult struct {
	text   string
	values []float32
	err    error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, _ []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastModel = model
	f.lastConfig = config
	if len(f.generate) == 0 {
		return nil, errors.New("unexpected call")
	}
	res := f.generate[0]
	f.generate = f.generate[1:]
	if res.err != nil {
		return nil, res.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: res.text}}},
		}},
	}, nil
}

func (f *fakeModels) EmbedContent(_ context.Context, model string, _ []*genai.Content, _ *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastModel = model
	if len(f.embed) == 0 {
		return nil, errors.New("unexpected call")
	}
	res := f.embed[0]
	f.embed = f.embed[1:]
	if res.err != nil {
		return nil, res.err
	}
	return &genai.EmbedContentResponse{
		Embeddings: []*genai.ContentEmbedding{{Values: res.values}},
	}, nil
}

func noWait(t *testing.T) {
	t.Helper()
	original := wait
	wait = func(context.Context, time.Duration) error { return nil }
	t.Cleanup(func() { wait = original })
}

func TestGenerateStructuredTextRequestsJSON(t *testing.T) {
	models := &fakeModels{generate: []fakeResult{{text: "{\"bestFitRoles\": []}"}}}
	client := newClient(models, Config{Model: "gemini-pro"}, zap.NewNop())

	out, err := client.GenerateStructuredText(context.Background(), "predict")
	require.NoError(t, err)
	assert.Equal(t, "{\"bestFitRoles\": []}", out)
	assert.Equal(t, "gemini-pro", models.lastModel)
	require.NotNil(t, models.lastConfig)
	assert.Equal(t, "application/json", models.lastConfig.ResponseMIMEType)
}

func TestGenerateStructuredTextRejectsEmptyPrompt(t *testing.T) {
	client := newClient(&fakeModels{}, Config{}, nil)

	_, err := client.GenerateStructuredText(context.Background(), "   ")
	require.Error(t, err)
}

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	noWait(t)

	tempErr := genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}
	models := &fakeModels{generate: []fakeResult{{err: tempErr}, {text: "retry ok"}}}
	client := newClient(models, Config{MaxRetries: 2}, zap.NewNop())

	out, err := client.GenerateStructuredText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "retry ok", out)
	assert.Equal(t, 2, models.calls)
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	noWait(t)

	tempErr := genai.APIError{Code: http.StatusServiceUnavailable, Status: "UNAVAILABLE"}
	models := &fakeModels{generate: []fakeResult{{err: tempErr}, {err: tempErr}}}
	client := newClient(models, Config{MaxRetries: 2}, zap.NewNop())

	_, err := client.GenerateStructuredText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, 2, models.calls)
}

func TestGeneratorDoesNotRetryOnLongQuotaDelay(t *testing.T) {
	noWait(t)

	quotaErr := genai.APIError{
		Code:    http.StatusTooManyRequests,
		Status:  "RESOURCE_EXHAUSTED",
		Message: "quota exhausted, retry after 60 seconds",
	}
	models := &fakeModels{generate: []fakeResult{{err: quotaErr}}}
	client := newClient(models, Config{MaxRetries: 3}, zap.NewNop())

	_, err := client.GenerateStructuredText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, 1, models.calls)
}

func TestGeneratorDoesNotRetryClientErrors(t *testing.T) {
	noWait(t)

	models := &fakeModels{generate: []fakeResult{{err: genai.APIError{Code: http.StatusBadRequest}}}}
	client := newClient(models, Config{MaxRetries: 3}, zap.NewNop())

	_, err := client.GenerateStructuredText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, 1, models.calls)
}

func TestEmbedUsesEmbeddingModel(t *testing.T) {
	models := &fakeModels{embed: []fakeResult{{values: []float32{0.1, 0.2}}}}
	client := newClient(models, Config{}, zap.NewNop())

	values, err := client.Embed(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, values)
	assert.Equal(t, defaultEmbeddingModel, models.lastModel)
}

func TestRetryDelay(t *testing.T) {
	delay, retry := retryDelay(genai.APIError{Code: http.StatusTooManyRequests, Message: "retry in 2.5s"}, 0)
	assert.True(t, retry)
	assert.Equal(t, 2500*time.Millisecond, delay)

	delay, retry = retryDelay(genai.APIError{Code: http.StatusBadGateway}, 2)
	assert.True(t, retry)
	assert.Equal(t, 4*time.Second, delay)

	_, retry = retryDelay(errors.New("network down"), 0)
	assert.False(t, retry)
}
