// Package report defines the analysis report returned by the pipeline.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/ats-analyzer/internal/entities"
	"github.com/spigell/ats-analyzer/internal/experience"
	"github.com/spigell/ats-analyzer/internal/keywords"
	"github.com/spigell/ats-analyzer/internal/sections"
)

// Report is the full résumé/job-description compatibility report.
type Report struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	ATSScore      int      `json:"atsScore"`
	Summary       string   `json:"summary"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	MissingSkills []string `json:"missingSkills"`
	Suggestions   []string `json:"suggestions"`

	AreasForImprovement       []string  `json:"areasForImprovement"`
	RecommendedCertifications []string  `json:"recommendedCertifications"`
	FormattingSuggestions     []string  `json:"formattingSuggestions"`
	ContentSuggestions        []string  `json:"contentSuggestions"`
	KeywordSuggestions        []string  `json:"keywordSuggestions"`
	SeniorityAlignment        string    `json:"seniorityAlignment"`
	Seniority                 Seniority `json:"seniority"`
	OverallNotes              string    `json:"overallNotes"`

	Scores       ScoreComponents `json:"scores"`
	CareerPath   CareerPath      `json:"careerPath"`
	QualityScore QualityScore    `json:"qualityScore"`
	Uniqueness   Uniqueness      `json:"uniqueness"`
	Details      Details         `json:"details"`
}

// ScoreComponents are the two inputs of the ATS score.
type ScoreComponents struct {
	Semantic float64 `json:"semanticScore"`
	Rule     float64 `json:"ruleScore"`
}

// Seniority is the detected and required experience level.
type Seniority struct {
	Detected  string `json:"detectedLevel"`
	Required  string `json:"requiredLevel"`
	Alignment string `json:"alignment"`
}

// CareerPath is the projected career trajectory.
type CareerPath struct {
	BestFitRoles          []string      `json:"bestFitRoles" mapstructure:"bestFitRoles"`
	FutureRoles           []string      `json:"futureRoles" mapstructure:"futureRoles"`
	MissingCertifications []string      `json:"missingCertifications" mapstructure:"missingCertifications"`
	SkillsRoadmap         []RoadmapItem `json:"skillsRoadmap" mapstructure:"skillsRoadmap"`
	AIPowered             bool          `json:"aiPowered" mapstructure:"-"`
}

// RoadmapItem is one step of the skills roadmap.
type RoadmapItem struct {
	Skill    string `json:"skill" mapstructure:"skill"`
	Priority string `json:"priority" mapstructure:"priority"`
	Timeline string `json:"timeline" mapstructure:"timeline"`
}

// QualityScore rates the résumé per category from 0 to 2; Overall is their sum.
type QualityScore struct {
	Overall          int      `json:"overall"`
	Clarity          int      `json:"clarity"`
	Structure        int      `json:"structure"`
	Grammar          int      `json:"grammar"`
	ATSCompatibility int      `json:"atsCompatibility"`
	Relevancy        int      `json:"relevancy"`
	Feedback         []string `json:"feedback"`
}

// Uniqueness measures how much of the résumé is boilerplate.
type Uniqueness struct {
	Score          int      `json:"score"`
	GenericPhrases []string `json:"genericPhrases"`
	Cliches        []string `json:"cliches"`
	Suggestions    []string `json:"suggestions"`
}

// Details exposes the intermediate results of the pipeline.
type Details struct {
	NormalizedSkills []string           `json:"normalizedSkills"`
	Entities         entities.Entities  `json:"entities"`
	ExperienceBlocks []experience.Block `json:"experienceBlocks"`
	TotalExperience  float64            `json:"totalExperience"`
	JDSkillDensity   []keywords.Record  `json:"jdSkillDensity"`
	Sections         sections.Map       `json:"sections"`
}

// New returns an empty report with a fresh ID.
func New() *Report {
	return &Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// JSON returns the indented JSON encoding of the report.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// DumpToFile writes the report to path, or to a new temporary file when path
// is empty, and returns the file name.
func (r *Report) DumpToFile(path string) (string, error) {
	var (
		file *os.File
		err  error
	)
	if path == "" {
		file, err = os.CreateTemp("", "ats-report-*.json")
	} else {
		file, err = os.Create(path)
	}
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	return file.Name(), nil
}
