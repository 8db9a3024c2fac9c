package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// ContentQualityName identifies the action verb and bullet length rule.
	ContentQualityName = "content_quality"

	minActionVerbs  = 5
	minBulletWords  = 5
	fallbackCompany = "your past company"
)

var (
	actionVerbs = []string{
		"developed", "implemented", "designed", "orchestrated", "engineered",
		"optimized", "spearheaded", "established", "revamped", "automated",
		"integrated", "led", "managed", "created", "built", "deployed",
		"reduced", "increased", "saved", "generated", "improved", "accelerated",
	}
	actionVerbPatterns = compileWords(actionVerbs)
	metricPattern      = regexp.MustCompile(`(?i)(\d+%|[$€£₹]\s?\d+|\b\d+k\b|\b\d+m\b|increased by|reduced by|\bsaved\b)`)
)

type contentQualityRule struct {
	toggle
}

// NewContentQuality creates the action-verb and measurable-impact check.
func NewContentQuality() Rule {
	return &contentQualityRule{}
}

func (r *contentQualityRule) Name() string { return ContentQualityName }

func (r *contentQualityRule) Evaluate(text string, facts *Facts) Finding {
	finding := newFinding()

	used := 0
	for _, pattern := range actionVerbPatterns {
		if pattern.MatchString(text) {
			used++
		}
	}
	if used < minActionVerbs {
		finding.add("Limited use of strong action verbs.",
			fmt.Sprintf("Use more strong action verbs like: %s.", strings.Join(actionVerbs[:5], ", ")))
	}

	if !metricPattern.MatchString(text) {
		finding.add("Lack of quantifiable metrics (numbers, %, $).",
			"Add measurable impact to your experience (e.g., 'improved performance by 20%', 'managed $50k budget').")
	}

	for _, block := range facts.Experience.Blocks {
		if !hasShortLine(block.Description) {
			continue
		}
		finding.add("", fmt.Sprintf("Expand on the description for role at %s. Some bullet points are too short.", blockLabel(block.Company, block.Role)))
	}

	finding.Details = map[string]string{"action_verbs": strconv.Itoa(used)}

	return finding
}

func hasShortLine(lines []string) bool {
	for _, line := range lines {
		if len(strings.Fields(line)) < minBulletWords {
			return true
		}
	}
	return false
}

func blockLabel(company, role string) string {
	if company = strings.TrimSpace(company); company != "" {
		return company
	}
	if role = strings.TrimSpace(role); role != "" {
		return role
	}
	return fallbackCompany
}

func compileWords(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return patterns
}

func (r *contentQualityRule) Status() Status {
	return Status{
		Name:    r.Name(),
		Enabled: r.IsEnabled(),
		Reason:  r.reason,
		Details: map[string]string{
			"min_action_verbs": strconv.Itoa(minActionVerbs),
			"min_bullet_words": strconv.Itoa(minBulletWords),
		},
	}
}
