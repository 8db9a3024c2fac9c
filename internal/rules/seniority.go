package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SeniorityName identifies the experience level alignment rule.
const SeniorityName = "seniority"

// Level is a position on the seniority scale.
type Level int

const (
	LevelIntern Level = iota
	LevelJunior
	LevelMid
	LevelSenior
	LevelLead
)

// Alignment values.
const (
	AlignmentMatch         = "Match"
	AlignmentMismatch      = "Mismatch"
	AlignmentOverqualified = "Overqualified"
)

// Candidate returns the label used for a candidate at this level.
func (l Level) Candidate() string {
	if l == LevelIntern {
		return "Fresher/Intern"
	}
	return l.String()
}

func (l Level) String() string {
	switch l {
	case LevelIntern:
		return "Intern"
	case LevelJunior:
		return "Junior"
	case LevelMid:
		return "Mid-Level"
	case LevelSenior:
		return "Senior"
	case LevelLead:
		return "Lead"
	default:
		return "Unknown"
	}
}

type levelSignal struct {
	level    Level
	pattern  *regexp.Regexp
	literals []string
}

// requiredSignals are checked in order; the first hit decides the level.
var requiredSignals = []levelSignal{
	{LevelIntern, regexp.MustCompile(`\b(intern|interns|internship|trainee|trainees)\b`), nil},
	{LevelJunior, regexp.MustCompile(`\b(junior|entry[\s-]level)\b`), []string{"0-1", "0-2"}},
	{LevelSenior, regexp.MustCompile(`\b(senior|sr\.)`), []string{"5+", "7+"}},
	{LevelLead, regexp.MustCompile(`\b(lead|principal|manager|architect)`), nil},
}

// RequiredLevel classifies the seniority a job description asks for.
func RequiredLevel(jobDescription string) Level {
	text := strings.ToLower(jobDescription)
	for _, signal := range requiredSignals {
		if signal.pattern.MatchString(text) {
			return signal.level
		}
		for _, literal := range signal.literals {
			if strings.Contains(text, literal) {
				return signal.level
			}
		}
	}
	return LevelMid
}

// CandidateLevel classifies total years of experience.
func CandidateLevel(years float64) Level {
	switch {
	case years < 1:
		return LevelIntern
	case years <= 2:
		return LevelJunior
	case years <= 5:
		return LevelMid
	case years <= 8:
		return LevelSenior
	default:
		return LevelLead
	}
}

// Align compares candidate and required levels.
func Align(candidate, required Level) string {
	switch {
	case candidate < required:
		return AlignmentMismatch
	case candidate > required+1:
		return AlignmentOverqualified
	default:
		return AlignmentMatch
	}
}

type seniorityRule struct {
	toggle
}

// NewSeniority creates the experience-level comparison.
func NewSeniority() Rule {
	return &seniorityRule{}
}

func (r *seniorityRule) Name() string { return SeniorityName }

func (r *seniorityRule) Evaluate(_ string, facts *Facts) Finding {
	finding := newFinding()

	candidate := CandidateLevel(facts.Experience.TotalYears)
	required := RequiredLevel(facts.JobDescription)
	alignment := Align(candidate, required)

	switch alignment {
	case AlignmentMismatch:
		finding.add("", fmt.Sprintf("Your profile appears to be %s-level, but the job requires %s-level responsibilities. Highlight any advanced projects or leadership experience.", candidate.Candidate(), required))
	case AlignmentOverqualified:
		finding.add("", fmt.Sprintf("You appear to be overqualified for this %s role. Ensure you tailor your resume to explain why you are interested in this position.", required))
	}

	finding.Details = map[string]string{
		"alignment":   alignment,
		"detected":    candidate.Candidate(),
		"required":    required.String(),
		"total_years": strconv.FormatFloat(facts.Experience.TotalYears, 'f', 1, 64),
	}

	return finding
}

func (r *seniorityRule) Status() Status {
	return Status{Name: r.Name(), Enabled: r.IsEnabled(), Reason: r.reason}
}
