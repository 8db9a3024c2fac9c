package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubRule struct {
	toggle
	name    string
	finding Finding
	calls   int
}

func (s *stubRule) Name() string { return s.name }

func (s *stubRule) Evaluate(string, *Facts) Finding {
	s.calls++
	return s.finding
}

func TestRunKeepsOrderAndSkipsDisabled(t *testing.T) {
	first := &stubRule{name: "first", finding: Finding{Issues: []string{"a"}}}
	second := &stubRule{name: "second", finding: Finding{Suggestions: []string{"b"}}}
	third := &stubRule{name: "third", finding: Finding{Issues: []string{"c"}}}

	steps := []Rule{first, second, third}
	DisableByName(steps, "second", "turned off in config")

	core, logs := observer.New(zapcore.InfoLevel)
	results := Run(zap.New(core), steps, "text", nil)

	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Name)
	assert.True(t, results[1].Skipped)
	assert.Equal(t, "third", results[2].Name)
	assert.Equal(t, 0, second.calls)
	assert.Equal(t, []string{"c"}, results.Get("third").Issues)
	assert.Empty(t, results.Get("second").Issues)
	assert.Empty(t, results.Get("unknown").Suggestions)

	assert.Equal(t, 2, logs.FilterMessage("rule step").Len())
	assert.Equal(t, 1, logs.FilterMessage("rule disabled").Len())
}

func TestDescribe(t *testing.T) {
	steps := Default()
	DisableByName(steps, CertificationsName, "not needed")

	statuses := Describe(steps)

	require.Len(t, statuses, 4)
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{FormattingName, ContentQualityName, SeniorityName, CertificationsName}, names)
	assert.True(t, statuses[0].Enabled)
	assert.False(t, statuses[3].Enabled)
	assert.Equal(t, "not needed", statuses[3].Reason)
}

func TestResultsRan(t *testing.T) {
	results := Results{
		{Name: FormattingName},
		{Name: SeniorityName, Skipped: true},
	}

	assert.True(t, results.Ran(FormattingName))
	assert.False(t, results.Ran(SeniorityName))
	assert.False(t, results.Ran(CertificationsName))
}
