// Package scoring runs the analysis pipeline and blends its signals into
// the final report.
package scoring

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/ats-analyzer/internal/ai"
	"github.com/spigell/ats-analyzer/internal/careerpath"
	"github.com/spigell/ats-analyzer/internal/entities"
	"github.com/spigell/ats-analyzer/internal/experience"
	"github.com/spigell/ats-analyzer/internal/keywords"
	"github.com/spigell/ats-analyzer/internal/logger"
	"github.com/spigell/ats-analyzer/internal/report"
	"github.com/spigell/ats-analyzer/internal/rules"
	"github.com/spigell/ats-analyzer/internal/sections"
	"github.com/spigell/ats-analyzer/internal/semantic"
	"github.com/spigell/ats-analyzer/internal/skills"
)

const (
	maxListed      = 3
	maxSuggestions = 5
)

// Config tunes the deterministic stages.
type Config struct {
	Experience    experience.Config
	Skills        skills.Config
	DisabledRules []string
}

// Deps are the pluggable capabilities. Nil members select the built-in
// or null implementation.
type Deps struct {
	Generator  ai.TextGenerator
	Embedder   ai.Embedder
	Tagger     entities.Tagger
	DateParser experience.DateParser
	// Timeout bounds each external call.
	Timeout time.Duration
}

// Engine is safe for concurrent use: it holds no per-request state.
type Engine struct {
	entities   *entities.Extractor
	experience *experience.Extractor
	skills     *skills.Normalizer
	rules      []rules.Rule
	semantic   *semantic.Scorer
	careerPath *careerpath.Predictor
	logger     *zap.Logger
}

// New wires the pipeline.
func New(cfg Config, deps Deps, log *zap.Logger) *Engine {
	log = logger.OrNop(log)

	tagger := deps.Tagger
	if tagger == nil {
		tagger = entities.HeuristicTagger{}
	}

	steps := rules.Default()
	for _, name := range cfg.DisabledRules {
		rules.DisableByName(steps, name, "disabled in config")
	}

	return &Engine{
		entities:   entities.New(tagger),
		experience: experience.New(cfg.Experience, deps.DateParser, log),
		skills:     skills.New(cfg.Skills),
		rules:      steps,
		semantic:   semantic.New(deps.Embedder, deps.Timeout, log),
		careerPath: careerpath.New(deps.Generator, deps.Timeout, log),
		logger:     log,
	}
}

// Rules returns the status of the configured rule stages.
func (e *Engine) Rules() []rules.Status {
	return rules.Describe(e.rules)
}

// Analyze builds the report for a résumé and a job description. It never
// fails: unavailable capabilities degrade to their fallbacks.
func (e *Engine) Analyze(ctx context.Context, resume, jobDescription string) *report.Report {
	r := report.New()
	log := logger.WithFields(e.logger, zap.String(logger.FieldReportID, r.ID))

	var (
		semanticScore float64
		path          report.CareerPath
		g             errgroup.Group
	)
	g.Go(func() error {
		semanticScore = e.semantic.Score(ctx, resume, jobDescription)
		return nil
	})
	g.Go(func() error {
		path = e.careerPath.Predict(ctx, resume, jobDescription)
		return nil
	})

	secs := sections.Parse(resume)
	ents := e.entities.Extract(resume)
	exp := e.experience.Extract(orDefault(secs.Experience, resume))
	normalized := e.skills.Normalize(skills.Candidates(orDefault(secs.Skills, resume)))
	kw := keywords.Analyze(resume, jobDescription)

	results := rules.Run(log, e.rules, resume, &rules.Facts{
		JobDescription: jobDescription,
		Sections:       secs,
		Experience:     exp,
		Skills:         normalized,
	})
	formatting := results.Get(rules.FormattingName)
	content := results.Get(rules.ContentQualityName)
	seniority := results.Get(rules.SeniorityName)

	matched := MatchedSkills(normalized, jobDescription)
	ruleScore := RuleScore(RuleInputs{
		MatchedSkills:    len(matched),
		JDKeywords:       len(kw.Density),
		Years:            exp.TotalYears,
		ProjectsText:     secs.Projects,
		EducationText:    secs.Education,
		FormattingIssues: len(formatting.Issues),
		ContentIssues:    len(content.Issues),
	})

	// Both branches swallow their errors.
	_ = g.Wait()

	r.Scores = report.ScoreComponents{Semantic: semanticScore, Rule: ruleScore}
	r.ATSScore = FinalScore(semanticScore, ruleScore)
	r.CareerPath = path

	candidate := rules.CandidateLevel(exp.TotalYears)
	required := rules.RequiredLevel(jobDescription)
	r.Seniority = report.Seniority{
		Detected:  candidate.Candidate(),
		Required:  required.String(),
		Alignment: rules.Align(candidate, required),
	}
	r.SeniorityAlignment = r.Seniority.Alignment

	r.Summary = fmt.Sprintf("Analyzed resume with %s years of experience. Found %d skills. Seniority alignment: %s.",
		strconv.FormatFloat(exp.TotalYears, 'f', -1, 64), len(normalized), r.SeniorityAlignment)
	r.OverallNotes = fmt.Sprintf("Your resume is a %s level match for this %s role.", r.Seniority.Detected, r.Seniority.Required)

	r.Strengths = strengths(matched, results)
	r.Weaknesses = weaknesses(formatting, content, kw.Missing)
	r.MissingSkills = kw.Missing
	r.AreasForImprovement = concat(formatting.Issues, content.Issues, seniority.Suggestions)
	r.RecommendedCertifications = results.Get(rules.CertificationsName).Suggestions
	r.FormattingSuggestions = formatting.Suggestions
	r.ContentSuggestions = content.Suggestions
	r.KeywordSuggestions = kw.Suggestions
	r.Suggestions = head(concat(formatting.Suggestions, content.Suggestions, kw.Suggestions), maxSuggestions)

	r.QualityScore = Quality(resume, secs, len(formatting.Issues), kw.Density)
	r.Uniqueness = Uniqueness(resume)

	r.Details = report.Details{
		NormalizedSkills: normalized,
		Entities:         ents,
		ExperienceBlocks: exp.Blocks,
		TotalExperience:  exp.TotalYears,
		JDSkillDensity:   kw.Density,
		Sections:         secs,
	}

	log.Info("analysis completed",
		zap.Int("ats_score", r.ATSScore),
		zap.Float64("semantic_score", semanticScore),
		zap.Float64("rule_score", ruleScore),
		zap.Bool("career_path_ai", path.AIPowered),
	)

	return r
}

func strengths(matched []string, results rules.Results) []string {
	out := make([]string, 0, maxListed+2)
	for _, skill := range head(matched, maxListed) {
		out = append(out, "Matches skill: "+skill)
	}
	if results.Ran(rules.FormattingName) && len(results.Get(rules.FormattingName).Issues) == 0 {
		out = append(out, "Good formatting")
	}
	if results.Ran(rules.ContentQualityName) && len(results.Get(rules.ContentQualityName).Issues) == 0 {
		out = append(out, "Strong action verbs used")
	}
	return out
}

func weaknesses(formatting, content rules.Finding, missing []string) []string {
	out := concat(head(formatting.Issues, maxListed), head(content.Issues, maxListed))
	for _, kw := range head(missing, maxListed) {
		out = append(out, "Missing keyword: "+kw)
	}
	return out
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n:n]
	}
	return items
}

func concat(lists ...[]string) []string {
	out := []string{}
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
