package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeReportsMissingTechnologies(t *testing.T) {
	jd := "We are looking for Kubernetes and Docker experience."
	resume := "Backend developer writing Go services with Terraform."

	got := Analyze(resume, jd)

	assert.Contains(t, got.Missing, "kubernetes")
	assert.Contains(t, got.Missing, "docker")
	assert.Contains(t, got.Suggestions, `The job emphasizes "kubernetes", but it's missing from your resume.`)
	assert.Contains(t, got.Suggestions, `The job emphasizes "docker", but it's missing from your resume.`)
	assert.Len(t, got.Suggestions, len(got.Missing))
}

func TestAnalyzeMissingIsSubsetOfExtracted(t *testing.T) {
	jd := "Senior Python engineer. Python, Django, PostgreSQL, Redis and Kafka. Kafka streaming, Kafka connect."
	resume := "Python and Django developer. Built Redis caches."

	got := Analyze(resume, jd)

	counts := make(map[string]int, len(got.Density))
	for _, rec := range got.Density {
		counts[rec.Keyword] = rec.ResumeCount
	}

	require.NotEmpty(t, got.Missing)
	for _, kw := range got.Missing {
		count, ok := counts[kw]
		require.True(t, ok, "missing keyword %q was not extracted", kw)
		assert.Zero(t, count, kw)
	}
	assert.NotContains(t, got.Missing, "python")
	assert.NotContains(t, got.Missing, "django")
	assert.NotContains(t, got.Missing, "redis")
}

func TestExtractRanksPhrasesThenFrequency(t *testing.T) {
	jd := "Python developer. Python, Golang, golang, golang services"

	got := Extract(jd)

	require.Len(t, got, 4)
	assert.Equal(t, Record{Keyword: "python", IsPhrase: true, JDCount: 2}, got[0])
	assert.Equal(t, Record{Keyword: "golang", JDCount: 3}, got[1])
	assert.Equal(t, Record{Keyword: "developer", JDCount: 1}, got[2])
	assert.Equal(t, Record{Keyword: "services", JDCount: 1}, got[3])
}

func TestExtractSkipsStopwordsAndCoveredWords(t *testing.T) {
	jd := "Excellent communication skills. Spring Boot and spring cloud. 2024 hiring, 5 years."

	got := Extract(jd)

	keywords := make([]string, 0, len(got))
	for _, rec := range got {
		keywords = append(keywords, rec.Keyword)
	}

	assert.Equal(t, []string{"spring boot", "cloud", "hiring"}, keywords)
}

func TestExtractEmpty(t *testing.T) {
	got := Extract("")

	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestPhraseCountToleratesSpacing(t *testing.T) {
	got := Analyze("Applied Machine   learning to ranking", "machine learning")

	require.Len(t, got.Density, 1)
	assert.Equal(t, 1, got.Density[0].ResumeCount)
	assert.Empty(t, got.Missing)
}

func TestCountWord(t *testing.T) {
	assert.Equal(t, 2, countWord("go golang go_lang go", "go"))
	assert.Equal(t, 1, countWord("опыт разработки, разработка", "разработка"))
	assert.Zero(t, countWord("anything", ""))
}
