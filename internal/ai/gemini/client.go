package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/ats-analyzer/internal/logger"
	"github.com/spigell/ats-analyzer/internal/utils"
)

const (
	provider              = "gemini"
	defaultModel          = "gemini-2.5-pro"
	defaultEmbeddingModel = "text-embedding-004"
	defaultMaxLogLength   = 200
	baseBackoff           = time.Second
	// Quota errors asking to wait longer than this are not retried.
	maxQuotaDelay = 10 * time.Second
)

var (
	wait            = utils.WaitFor
	retryDelayRegex = regexp.MustCompile(`(?i)retry (?:after|in) (\d+(?:\.\d+)?)\s*s`)
)

type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Config holds the Gemini connection settings.
type Config struct {
	APIKey         string
	Model          string
	EmbeddingModel string
	MaxRetries     int
	MaxLogLength   int
}

// Client is the live implementation of ai.TextGenerator and ai.Embedder.
type Client struct {
	models         modelsAPI
	model          string
	embeddingModel string
	maxRetries     int
	maxLogLen      int
	logger         *zap.Logger
}

// New creates a Client for the Gemini API backend.
func New(ctx context.Context, cfg Config, log *zap.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newClient(client.Models, cfg, log), nil
}

func newClient(models modelsAPI, cfg Config, log *zap.Logger) *Client {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	embeddingModel := strings.TrimSpace(cfg.EmbeddingModel)
	if embeddingModel == "" {
		embeddingModel = defaultEmbeddingModel
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	maxLogLen := cfg.MaxLogLength
	if maxLogLen <= 0 {
		maxLogLen = defaultMaxLogLength
	}

	return &Client{
		models:         models,
		model:          model,
		embeddingModel: embeddingModel,
		maxRetries:     maxRetries,
		maxLogLen:      maxLogLen,
		logger:         logger.OrNop(log),
	}
}

// GenerateStructuredText asks the model for a JSON response and returns its text.
func (c *Client) GenerateStructuredText(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	log := logger.WithCapability(c.logger, provider, c.model, "generate")
	log.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, c.maxLogLen)),
	)

	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}

	var output string
	err := c.withRetry(ctx, log, func() error {
		resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
		if err != nil {
			return err
		}
		output, err = responseText(resp)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	log.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(output)),
		zap.String("response_preview", utils.TruncateForLog(output, c.maxLogLen)),
	)

	return output, nil
}

// Embed returns the embedding vector of text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text to embed must not be empty")
	}

	log := logger.WithCapability(c.logger, provider, c.embeddingModel, "embed")

	var values []float32
	err := c.withRetry(ctx, log, func() error {
		resp, err := c.models.EmbedContent(ctx, c.embeddingModel, genai.Text(text), nil)
		if err != nil {
			return err
		}
		if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
			return errors.New("gemini api returned no embeddings")
		}
		values = resp.Embeddings[0].Values
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}

	log.Debug("gemini embedding received", zap.Int("dimensions", len(values)))
	return values, nil
}

// Model returns the generation model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

func (c *Client) withRetry(ctx context.Context, log *zap.Logger, call func() error) error {
	var err error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		err = call()
		if err == nil {
			return nil
		}

		delay, retry := retryDelay(err, attempt)
		if !retry || attempt == c.maxRetries-1 {
			return err
		}

		log.Warn("gemini call failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if waitErr := wait(ctx, delay); waitErr != nil {
			return waitErr
		}
	}
	return err
}

// retryDelay reports whether err is temporary and how long to wait before the next attempt.
func retryDelay(err error, attempt int) (time.Duration, bool) {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return 0, false
	}

	backoff := baseBackoff << attempt

	switch {
	case apiErr.Code == http.StatusTooManyRequests:
		if m := retryDelayRegex.FindStringSubmatch(apiErr.Message); m != nil {
			seconds, parseErr := strconv.ParseFloat(m[1], 64)
			if parseErr == nil {
				delay := time.Duration(seconds * float64(time.Second))
				if delay > maxQuotaDelay {
					return 0, false
				}
				return delay, true
			}
		}
		return backoff, true
	case apiErr.Code >= http.StatusInternalServerError:
		return backoff, true
	default:
		return 0, false
	}
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", errors.New("gemini api returned empty response")
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}
