package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spigell/ats-analyzer/internal/entities"
	"github.com/spigell/ats-analyzer/internal/sections"
)

const (
	// FormattingName identifies the layout and contact details rule.
	FormattingName = "formatting"

	minSectionLength   = 10
	minWords           = 200
	maxWords           = 1500
	minBulletRatio     = 0.2
	bulletCheckMinimum = 20
	lateSkillsRatio    = 0.7
)

var (
	requiredSections = []sections.Name{sections.Experience, sections.Education, sections.Skills}
	bulletPattern    = regexp.MustCompile(`^[-•*➢➤●]\s`)
)

type formattingRule struct {
	toggle
}

// NewFormatting creates the layout and structure check.
func NewFormatting() Rule {
	return &formattingRule{}
}

func (r *formattingRule) Name() string { return FormattingName }

func (r *formattingRule) Evaluate(text string, facts *Facts) Finding {
	finding := newFinding()

	var missing []string
	for _, name := range requiredSections {
		if utf8.RuneCountInString(facts.Sections.Get(name)) < minSectionLength {
			missing = append(missing, string(name))
		}
	}
	if len(missing) > 0 {
		titles := make([]string, len(missing))
		for i, name := range missing {
			titles[i] = strings.ToUpper(name[:1]) + name[1:]
		}
		finding.add(
			fmt.Sprintf("Missing clear section headers: %s", strings.Join(titles, ", ")),
			fmt.Sprintf("Add clear, standard headers for: %s", strings.Join(missing, ", ")),
		)
	}

	words := len(strings.Fields(text))
	switch {
	case words < minWords:
		finding.add("Resume is too short (less than 200 words).",
			"Expand on your experience and skills to provide more context.")
	case words > maxWords:
		finding.add("Resume might be too long (more than 2 pages).",
			"Try to condense your resume to 1-2 pages for better readability.")
	}

	lines, bullets := 0, 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines++
		if bulletPattern.MatchString(line) {
			bullets++
		}
	}
	if lines > bulletCheckMinimum && float64(bullets)/float64(lines) < minBulletRatio {
		finding.add("Low usage of bullet points detected.",
			"Convert long paragraphs into bullet points to improve ATS readability.")
	}

	if !entities.HasEmail(text) {
		finding.add("No email address detected.", "Ensure your email address is clearly visible.")
	}
	if !entities.HasPhone(text) {
		finding.add("No phone number detected.", "Include a phone number for recruiters to contact you.")
	}

	if idx := strings.Index(strings.ToLower(text), "skills"); float64(idx) > float64(len(text))*lateSkillsRatio {
		finding.add("", "Consider moving your Skills section higher up (e.g., after Summary) for better visibility.")
	}

	finding.Details = map[string]string{
		"words":   strconv.Itoa(words),
		"lines":   strconv.Itoa(lines),
		"bullets": strconv.Itoa(bullets),
	}

	return finding
}

func (r *formattingRule) Status() Status {
	return Status{
		Name:    r.Name(),
		Enabled: r.IsEnabled(),
		Reason:  r.reason,
		Details: map[string]string{
			"words":            fmt.Sprintf("%d-%d", minWords, maxWords),
			"min_bullet_ratio": strconv.FormatFloat(minBulletRatio, 'f', -1, 64),
		},
	}
}
