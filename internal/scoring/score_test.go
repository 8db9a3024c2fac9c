package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleScore(t *testing.T) {
	tests := []struct {
		name string
		in   RuleInputs
		want float64
	}{
		{
			name: "experienced candidate",
			in:   RuleInputs{MatchedSkills: 2, JDKeywords: 4, Years: 3, ContentIssues: 1},
			want: 25 + 15 + 10 + 8,
		},
		{
			name: "terms are capped",
			in:   RuleInputs{MatchedSkills: 10, JDKeywords: 5, Years: 12},
			want: 50 + 20 + 10 + 10,
		},
		{
			name: "fresher bonus",
			in: RuleInputs{
				ProjectsText:     strings.Repeat("p", 60),
				EducationText:    strings.Repeat("e", 20),
				FormattingIssues: 6,
			},
			want: 0 + 10 + 0 + 10,
		},
		{
			name: "no job keywords",
			in:   RuleInputs{MatchedSkills: 1, JDKeywords: 0, Years: 0.5, FormattingIssues: 2, ContentIssues: 2},
			want: 50 + 2.5 + 6 + 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RuleScore(tt.in), 1e-9)
		})
	}
}

func TestFinalScore(t *testing.T) {
	assert.Equal(t, 35, FinalScore(0, 58))
	assert.Equal(t, 100, FinalScore(100, 100))
	assert.Equal(t, 100, FinalScore(100, 200))
	assert.Equal(t, 0, FinalScore(-50, 0))
	assert.Equal(t, 0, FinalScore(0, 0))
	assert.Equal(t, 52, FinalScore(40, 60))
}

func TestMatchedSkills(t *testing.T) {
	got := MatchedSkills([]string{"Go", "Python", "Node.js"}, "We use GO and node.js daily")

	assert.Equal(t, []string{"Go", "Node.js"}, got)
	assert.Empty(t, MatchedSkills(nil, "anything"))
}
