package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/ats-analyzer/internal/experience"
)

func TestRequiredLevel(t *testing.T) {
	tests := []struct {
		jd   string
		want Level
	}{
		{"Summer internship for students", LevelIntern},
		{"Junior Go developer", LevelJunior},
		{"Entry-level analyst, 0-2 years", LevelJunior},
		{"Sr. Backend Engineer", LevelSenior},
		{"5+ years of Go", LevelSenior},
		{"Principal Engineer", LevelLead},
		{"Engineering Manager", LevelLead},
		{"Backend engineer working on internal tools", LevelMid},
		{"Strong leadership skills", LevelLead},
		{"Reporting to engineering managers", LevelLead},
		{"Work with solution architects", LevelLead},
		{"Senior engineer to lead a team", LevelSenior},
	}

	for _, tt := range tests {
		t.Run(tt.jd, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredLevel(tt.jd))
		})
	}
}

func TestCandidateLevelThresholds(t *testing.T) {
	tests := []struct {
		years float64
		want  Level
	}{
		{0, LevelIntern},
		{0.9, LevelIntern},
		{1, LevelJunior},
		{2, LevelJunior},
		{2.1, LevelMid},
		{5, LevelMid},
		{5.5, LevelSenior},
		{8, LevelSenior},
		{8.1, LevelLead},
		{30, LevelLead},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CandidateLevel(tt.years), "years %.1f", tt.years)
	}
}

func TestCandidateLevelIsMonotonic(t *testing.T) {
	prev := CandidateLevel(0)
	for years := 0.0; years <= 15; years += 0.1 {
		level := CandidateLevel(years)
		assert.GreaterOrEqual(t, int(level), int(prev), "years %.1f", years)
		prev = level
	}
}

func TestSeniorityAlignment(t *testing.T) {
	tests := []struct {
		name      string
		years     float64
		jd        string
		alignment string
		hasTip    bool
	}{
		{"junior for senior role", 1.5, "Senior Go engineer", AlignmentMismatch, true},
		{"lead for junior role", 10, "Junior developer", AlignmentOverqualified, true},
		{"senior for mid role", 6, "Backend developer", AlignmentMatch, false},
		{"mid for mid role", 3, "Backend developer", AlignmentMatch, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := &Facts{JobDescription: tt.jd, Experience: experience.Result{TotalYears: tt.years}}

			got := NewSeniority().Evaluate("", facts)

			assert.Equal(t, tt.alignment, got.Details["alignment"])
			assert.Equal(t, tt.hasTip, len(got.Suggestions) == 1)
			assert.Empty(t, got.Issues)
		})
	}
}

func TestSeniorityMismatchMessage(t *testing.T) {
	facts := &Facts{JobDescription: "Senior engineer"}

	got := NewSeniority().Evaluate("", facts)

	assert.Equal(t, "Fresher/Intern", got.Details["detected"])
	assert.Equal(t, "Senior", got.Details["required"])
	assert.Equal(t, []string{"Your profile appears to be Fresher/Intern-level, but the job requires Senior-level responsibilities. Highlight any advanced projects or leadership experience."}, got.Suggestions)
}
