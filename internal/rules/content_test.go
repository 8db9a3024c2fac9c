package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/ats-analyzer/internal/experience"
)

func TestContentQualityFlagsWeakText(t *testing.T) {
	text := "Responsible for servers. Helped the team."

	got := NewContentQuality().Evaluate(text, &Facts{})

	assert.Equal(t, []string{
		"Limited use of strong action verbs.",
		"Lack of quantifiable metrics (numbers, %, $).",
	}, got.Issues)
	assert.Equal(t, "Use more strong action verbs like: developed, implemented, designed, orchestrated, engineered.", got.Suggestions[0])
}

func TestContentQualityAcceptsStrongText(t *testing.T) {
	text := "Developed APIs. Designed schemas. Automated deploys. Led a team. Reduced costs by 30%."

	got := NewContentQuality().Evaluate(text, &Facts{})

	assert.Empty(t, got.Issues)
	assert.Empty(t, got.Suggestions)
}

func TestContentQualityVerbsNeedWordBoundaries(t *testing.T) {
	// "led" inside "scheduled" and "built" inside "rebuilt" do not count.
	text := "Scheduled meetings, rebuilt nothing, saved $100."

	got := NewContentQuality().Evaluate(text, &Facts{})

	assert.Equal(t, "1", got.Details["action_verbs"])
}

func TestContentQualityShortBullets(t *testing.T) {
	facts := &Facts{Experience: experience.Result{Blocks: []experience.Block{
		{Company: "Acme", Description: []string{"- Fixed bugs"}},
		{Role: "Data Analyst", Description: []string{"- Built dashboards for the finance department"}},
		{Description: []string{"- Tests"}},
	}}}

	got := NewContentQuality().Evaluate("Increased revenue by 10%", facts)

	assert.Contains(t, got.Suggestions, "Expand on the description for role at Acme. Some bullet points are too short.")
	assert.Contains(t, got.Suggestions, "Expand on the description for role at your past company. Some bullet points are too short.")
	assert.NotContains(t, got.Suggestions, "Expand on the description for role at Data Analyst. Some bullet points are too short.")
}
