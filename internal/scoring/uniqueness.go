package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spigell/ats-analyzer/internal/report"
)

const (
	clichePenalty  = 10
	genericPenalty = 5
)

var (
	cliches = []string{
		"team player", "hard worker", "hardworking", "results-driven", "results driven",
		"detail-oriented", "detail oriented", "go-getter", "think outside the box", "self-starter",
		"synergy", "proven track record", "fast learner", "quick learner", "passionate about",
		"excellent communication skills", "dynamic", "highly motivated",
	}
	genericPhrases = []string{
		"responsible for", "duties included", "worked on", "helped with", "tasked with",
		"involved in", "participated in", "assisted with",
	}

	clichePatterns  = phrasePatterns(cliches)
	genericPatterns = phrasePatterns(genericPhrases)
)

// Uniqueness scores how free the résumé is of clichés and generic duty lines.
func Uniqueness(text string) report.Uniqueness {
	u := report.Uniqueness{
		GenericPhrases: []string{},
		Cliches:        []string{},
		Suggestions:    []string{},
	}

	for i, pattern := range clichePatterns {
		if pattern.MatchString(text) {
			u.Cliches = append(u.Cliches, cliches[i])
			u.Suggestions = append(u.Suggestions, fmt.Sprintf("Replace %q with a concrete example that shows it.", cliches[i]))
		}
	}

	used := make(map[int]bool)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		for i, pattern := range genericPatterns {
			if !pattern.MatchString(line) {
				continue
			}
			u.GenericPhrases = append(u.GenericPhrases, line)
			if !used[i] {
				used[i] = true
				u.Suggestions = append(u.Suggestions, fmt.Sprintf("Start bullets with an action verb and a result instead of %q.", genericPhrases[i]))
			}
			break
		}
	}

	u.Score = max(0, 100-clichePenalty*len(u.Cliches)-genericPenalty*len(u.GenericPhrases))
	return u
}

func phrasePatterns(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		patterns[i] = regexp.MustCompile(`(?i)\b` + strings.ReplaceAll(regexp.QuoteMeta(p), " ", `\s+`) + `\b`)
	}
	return patterns
}
