package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	a, b := New(), New()

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestDumpToFile(t *testing.T) {
	r := New()
	r.ATSScore = 42
	r.CareerPath = CareerPath{
		BestFitRoles:  []string{"Backend Engineer"},
		SkillsRoadmap: []RoadmapItem{{Skill: "System Design", Priority: "High", Timeline: "3 months"}},
		AIPowered:     true,
	}

	path := filepath.Join(t.TempDir(), "report.json")
	name, err := r.DumpToFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, name)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(42), decoded["atsScore"])
	careerPath := decoded["careerPath"].(map[string]any)
	assert.Equal(t, true, careerPath["aiPowered"])
	assert.Contains(t, decoded, "details")
}

func TestDumpToTempFile(t *testing.T) {
	name, err := New().DumpToFile("")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(name) })

	assert.FileExists(t, name)
}
