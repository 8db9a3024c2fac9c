package scoring

import (
	"strings"
	"unicode"

	"github.com/spigell/ats-analyzer/internal/keywords"
	"github.com/spigell/ats-analyzer/internal/report"
	"github.com/spigell/ats-analyzer/internal/sections"
)

const (
	clearLineWords = 25
	denseLineWords = 40
)

// Quality rates the résumé from 0 to 2 in each category. Grammar only looks
// for accidentally repeated words.
func Quality(text string, secs sections.Map, formattingIssues int, density []keywords.Record) report.QualityScore {
	q := report.QualityScore{Feedback: []string{}}

	q.Clarity = clarity(text)
	if q.Clarity < 2 {
		q.Feedback = append(q.Feedback, "Shorten long lines and paragraphs so each point is easy to scan.")
	}

	q.Structure = structure(secs)
	if q.Structure < 2 {
		q.Feedback = append(q.Feedback, "Organize the resume under standard Experience, Education and Skills headers.")
	}

	q.Grammar = grammar(text)
	if q.Grammar < 2 {
		q.Feedback = append(q.Feedback, "Proofread the text: some words are repeated back to back.")
	}

	q.ATSCompatibility = bucket(formattingIssues == 0, formattingIssues <= 2)
	if q.ATSCompatibility < 2 {
		q.Feedback = append(q.Feedback, "Fix the formatting issues so applicant tracking systems can parse the resume.")
	}

	q.Relevancy = relevancy(density)
	if q.Relevancy < 2 {
		q.Feedback = append(q.Feedback, "Mirror more of the job description's keywords where they truthfully apply.")
	}

	q.Overall = q.Clarity + q.Structure + q.Grammar + q.ATSCompatibility + q.Relevancy
	return q
}

func bucket(full, partial bool) int {
	switch {
	case full:
		return 2
	case partial:
		return 1
	default:
		return 0
	}
}

func clarity(text string) int {
	lines, words := 0, 0
	for _, line := range strings.Split(text, "\n") {
		n := len(strings.Fields(line))
		if n == 0 {
			continue
		}
		lines++
		words += n
	}
	if lines == 0 {
		return 0
	}
	avg := words / lines
	return bucket(avg <= clearLineWords, avg <= denseLineWords)
}

func structure(secs sections.Map) int {
	present := 0
	for _, name := range []sections.Name{sections.Experience, sections.Education, sections.Skills} {
		if len([]rune(secs.Get(name))) >= 10 {
			present++
		}
	}
	return bucket(present == 3, present == 2)
}

func grammar(text string) int {
	repeats := 0
	prev := ""
	for _, field := range strings.Fields(strings.ToLower(text)) {
		word := strings.TrimFunc(field, func(r rune) bool { return !unicode.IsLetter(r) })
		if word == "" {
			prev = ""
			continue
		}
		if word == prev {
			repeats++
		}
		prev = word
	}
	return bucket(repeats == 0, repeats <= 2)
}

func relevancy(density []keywords.Record) int {
	if len(density) == 0 {
		return 1
	}
	found := 0
	for _, rec := range density {
		if !rec.Missing() {
			found++
		}
	}
	ratio := float64(found) / float64(len(density))
	return bucket(ratio >= 0.6, ratio >= 0.3)
}
