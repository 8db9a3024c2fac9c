// Package careerpath projects a career path for the candidate with a
// generative model and falls back to a fixed answer when the model is
// unavailable or returns garbage.
package careerpath

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/spigell/ats-analyzer/internal/ai"
	"github.com/spigell/ats-analyzer/internal/logger"
	"github.com/spigell/ats-analyzer/internal/report"
	"github.com/spigell/ats-analyzer/internal/utils"
)

const (
	maxResumeChars         = 5000
	maxJobDescriptionChars = 2000

	maxBestFitRoles          = 4
	maxFutureRoles           = 3
	maxMissingCertifications = 4
	maxSkillsRoadmap         = 5

	defaultMaxLogLength = 200
)

var (
	//go:embed prompt.md
	promptTemplate string

	//go:embed schema.json
	schema string

	schemaLoader = gojsonschema.NewStringLoader(schema)
)

// Predictor asks a TextGenerator for a career path.
type Predictor struct {
	generator ai.TextGenerator
	timeout   time.Duration
	maxLogLen int
	logger    *zap.Logger
}

// New creates a Predictor. A nil generator behaves like ai.NopGenerator and
// a non-positive timeout disables the deadline.
func New(generator ai.TextGenerator, timeout time.Duration, log *zap.Logger) *Predictor {
	if generator == nil {
		generator = ai.NopGenerator{}
	}
	return &Predictor{
		generator: generator,
		timeout:   timeout,
		maxLogLen: defaultMaxLogLength,
		logger:    logger.OrNop(log),
	}
}

// Predict returns the model's career path, or Fallback on any failure.
// AIPowered tells which of the two was returned.
func (p *Predictor) Predict(ctx context.Context, resume, jobDescription string) report.CareerPath {
	path, err := p.predict(ctx, resume, jobDescription)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			p.logger.Info("using rule-based career path", zap.String("reason", err.Error()))
		} else {
			p.logger.Warn("career path prediction failed, falling back to rule-based", zap.Error(err))
		}
		return Fallback()
	}

	path.AIPowered = true
	return path
}

func (p *Predictor) predict(ctx context.Context, resume, jobDescription string) (report.CareerPath, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	prompt := BuildPrompt(resume, jobDescription)

	raw, err := p.generator.GenerateStructuredText(ctx, prompt)
	if err != nil {
		return report.CareerPath{}, err
	}

	p.logger.Debug("career path response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, p.maxLogLen)),
	)

	return Parse(raw)
}

// BuildPrompt fills the prompt template with the truncated texts.
func BuildPrompt(resume, jobDescription string) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{RESUME}}", utils.Head(resume, maxResumeChars))
	return strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", utils.Head(jobDescription, maxJobDescriptionChars))
}

// Parse validates raw model output against the career-path schema and
// decodes it, applying the list limits.
func Parse(raw string) (report.CareerPath, error) {
	cleaned := extractJSON(raw)
	if cleaned == "" {
		return report.CareerPath{}, errors.New("empty career path response")
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return report.CareerPath{}, fmt.Errorf("parse career path response: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return report.CareerPath{}, fmt.Errorf("career path response does not match schema: %s", strings.Join(details, "; "))
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return report.CareerPath{}, fmt.Errorf("parse career path response: %w", err)
	}

	var path report.CareerPath
	if err := mapstructure.WeakDecode(data, &path); err != nil {
		return report.CareerPath{}, fmt.Errorf("decode career path response: %w", err)
	}

	path.BestFitRoles = limit(path.BestFitRoles, maxBestFitRoles)
	path.FutureRoles = limit(path.FutureRoles, maxFutureRoles)
	path.MissingCertifications = limit(path.MissingCertifications, maxMissingCertifications)
	path.SkillsRoadmap = limit(path.SkillsRoadmap, maxSkillsRoadmap)

	return path, nil
}

// Fallback is the career path used when no model answer is available.
func Fallback() report.CareerPath {
	return report.CareerPath{
		BestFitRoles:          []string{"Software Engineer", "Full Stack Developer"},
		FutureRoles:           []string{"Senior Engineer", "Tech Lead"},
		MissingCertifications: []string{"AWS Certified Solutions Architect"},
		SkillsRoadmap: []report.RoadmapItem{
			{Skill: "System Design", Priority: "High", Timeline: "3 months"},
			{Skill: "Cloud Architecture", Priority: "Medium", Timeline: "6 months"},
		},
		AIPowered: false,
	}
}

func limit[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > n {
		return items[:n:n]
	}
	return items
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
