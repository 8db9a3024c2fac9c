package entities

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	organizationPattern = regexp.MustCompile(`\b(?:[A-Z][\w&.-]*[ \t]+){0,4}(?:Inc|LLC|Ltd|Corp|Corporation|Company|Co|GmbH|Group|Technologies|Solutions|Labs|Systems|Software|Bank|University|Institute)\b\.?`)
	personWordPattern   = regexp.MustCompile(`^[A-Z][a-z]+(?:[-'][A-Z]?[a-z]+)?\.?$`)
)

// HeuristicTagger is a dependency-free Tagger based on capitalisation.
// Organisations are capitalised word runs ending with a company suffix;
// people are short lines of two to four capitalised words.
type HeuristicTagger struct{}

// Organizations implements Tagger.
func (HeuristicTagger) Organizations(text string) []string {
	matches := organizationPattern.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSuffix(strings.TrimSpace(m), ".")
		// A lone suffix word is not a name.
		if !strings.ContainsFunc(m, unicode.IsSpace) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// People implements Tagger.
func (HeuristicTagger) People(text string) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.ContainsFunc(line, unicode.IsDigit) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if organizationPattern.MatchString(line) {
			continue
		}

		person := true
		for _, w := range words {
			if !personWordPattern.MatchString(w) {
				person = false
				break
			}
		}
		if person {
			out = append(out, line)
		}
	}
	return out
}
