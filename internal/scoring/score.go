package scoring

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	skillWeight     = 50.0
	experienceCap   = 20.0
	pointsPerYear   = 5.0
	fresherBonus    = 10.0
	fresherMinChars = 50
	qualityTermMax  = 10.0
	pointsPerIssue  = 2.0
	semanticWeight  = 0.4
	ruleWeight      = 0.6
	maxScore        = 100
)

// RuleInputs are the deterministic signals behind the rule score.
type RuleInputs struct {
	MatchedSkills    int
	JDKeywords       int
	Years            float64
	ProjectsText     string
	EducationText    string
	FormattingIssues int
	ContentIssues    int
}

// RuleScore combines the rule signals into a score between 0 and 100.
func RuleScore(in RuleInputs) float64 {
	score := math.Min(float64(in.MatchedSkills)/float64(max(1, in.JDKeywords))*skillWeight, skillWeight)

	if in.Years > 0 {
		score += math.Min(in.Years*pointsPerYear, experienceCap)
	} else {
		if utf8.RuneCountInString(in.ProjectsText) > fresherMinChars {
			score += fresherBonus
		}
		if utf8.RuneCountInString(in.EducationText) > fresherMinChars {
			score += fresherBonus
		}
	}

	score += qualityTerm(in.FormattingIssues)
	score += qualityTerm(in.ContentIssues)

	return score
}

func qualityTerm(issues int) float64 {
	if issues == 0 {
		return qualityTermMax
	}
	return math.Max(0, qualityTermMax-pointsPerIssue*float64(issues))
}

// FinalScore blends the semantic and rule scores into the ATS score.
func FinalScore(semantic, rule float64) int {
	score := int(math.Round(semantic*semanticWeight + rule*ruleWeight))
	return min(maxScore, max(0, score))
}

// MatchedSkills returns the skills mentioned anywhere in the job description.
func MatchedSkills(skills []string, jobDescription string) []string {
	jd := strings.ToLower(jobDescription)
	matched := make([]string, 0, len(skills))
	for _, skill := range skills {
		if strings.Contains(jd, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}
	return matched
}
