// Package rules holds the heuristic résumé checks and the runner that
// evaluates them in a fixed order.
package rules

import (
	"go.uber.org/zap"

	"github.com/spigell/ats-analyzer/internal/experience"
	"github.com/spigell/ats-analyzer/internal/logger"
	"github.com/spigell/ats-analyzer/internal/sections"
)

// Rule is a single check over the résumé text.
type Rule interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Evaluate(text string, facts *Facts) Finding
}

// Facts is what the earlier pipeline stages learned about the résumé.
type Facts struct {
	JobDescription string
	Sections       sections.Map
	Experience     experience.Result
	Skills         []string
}

// Finding is the uniform output of every rule.
type Finding struct {
	Issues      []string          `json:"issues"`
	Suggestions []string          `json:"suggestions"`
	Details     map[string]string `json:"details,omitempty"`
}

func newFinding() Finding {
	return Finding{Issues: []string{}, Suggestions: []string{}}
}

func (f *Finding) add(issue, suggestion string) {
	if issue != "" {
		f.Issues = append(f.Issues, issue)
	}
	if suggestion != "" {
		f.Suggestions = append(f.Suggestions, suggestion)
	}
}

// Result is the outcome of one stage. Skipped stages carry an empty finding.
type Result struct {
	Name    string  `json:"name"`
	Skipped bool    `json:"skipped,omitempty"`
	Finding Finding `json:"finding"`
}

// Results keeps stage outcomes in evaluation order.
type Results []Result

// Get returns the finding of the named stage or an empty finding.
func (r Results) Get(name string) Finding {
	for _, res := range r {
		if res.Name == name {
			return res.Finding
		}
	}
	return newFinding()
}

// Ran reports whether the named stage was evaluated.
func (r Results) Ran(name string) bool {
	for _, res := range r {
		if res.Name == name {
			return !res.Skipped
		}
	}
	return false
}

// Status represents runtime information about a rule.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// statusProvider is implemented by rules that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// toggle implements the enable/disable half of Rule.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

// Default returns a fresh, ordered stage list.
func Default() []Rule {
	return []Rule{
		NewFormatting(),
		NewContentQuality(),
		NewSeniority(),
		NewCertifications(),
	}
}

// DisableByName marks a rule with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Rule, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run evaluates the enabled rules in order.
func Run(log *zap.Logger, steps []Rule, text string, facts *Facts) Results {
	log = logger.OrNop(log)
	if facts == nil {
		facts = &Facts{}
	}

	results := make(Results, 0, len(steps))
	for _, step := range steps {
		if !step.IsEnabled() {
			log.Info("rule disabled", zap.String("name", step.Name()))
			results = append(results, Result{Name: step.Name(), Skipped: true, Finding: newFinding()})
			continue
		}

		finding := step.Evaluate(text, facts)

		log.Info("rule step",
			zap.String("name", step.Name()),
			zap.Int("issues", len(finding.Issues)),
			zap.Int("suggestions", len(finding.Suggestions)),
		)

		results = append(results, Result{Name: step.Name(), Finding: finding})
	}

	return results
}

// Describe returns status entries for the provided rules.
func Describe(steps []Rule) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
