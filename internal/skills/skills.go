// Package skills maps free-text skill tokens onto a canonical taxonomy.
package skills

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

const (
	// DefaultFuzzyThreshold is the FuzzyThreshold used when none is configured.
	DefaultFuzzyThreshold = 0.3
	// DefaultMinFuzzyLength keeps short tokens such as "rest" from being
	// matched to a neighbouring skill like "Rust".
	DefaultMinFuzzyLength = 5
	minTokenLength        = 2
)

var candidatePattern = regexp.MustCompile(`[A-Za-z0-9.#+]+`)

// Config controls fuzzy matching.
type Config struct {
	// FuzzyThreshold is the highest normalised edit distance accepted as a
	// match. Lower is stricter.
	FuzzyThreshold float64 `mapstructure:"fuzzy-threshold" validate:"omitempty,gt=0,lte=1"`
	// MinFuzzyLength is the shortest token, in runes, that is matched fuzzily.
	MinFuzzyLength int `mapstructure:"min-fuzzy-length" validate:"omitempty,gte=2"`
}

// Normalizer resolves tokens against the taxonomy.
type Normalizer struct {
	threshold float64
	minFuzzy  int
	canonical []string
	lower     []string
	exact     map[string]string
}

// New builds a Normalizer. Zero config values select the defaults.
func New(cfg Config) *Normalizer {
	threshold := cfg.FuzzyThreshold
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	minFuzzy := cfg.MinFuzzyLength
	if minFuzzy <= 0 {
		minFuzzy = DefaultMinFuzzyLength
	}

	n := &Normalizer{
		threshold: threshold,
		minFuzzy:  minFuzzy,
		canonical: taxonomy,
		lower:     make([]string, len(taxonomy)),
		exact:     make(map[string]string, len(taxonomy)),
	}
	for i, skill := range taxonomy {
		key := strings.ToLower(skill)
		n.lower[i] = key
		n.exact[key] = skill
	}
	return n
}

// Candidates returns the skill-like tokens of text.
func Candidates(text string) []string {
	matches := candidatePattern.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimRight(m, ".")
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// Normalize returns the canonical form of every token, without duplicates,
// in order of first occurrence.
func (n *Normalizer) Normalize(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if utf8.RuneCountInString(token) < minTokenLength {
			continue
		}

		skill := n.resolve(token)
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}

	return out
}

func (n *Normalizer) resolve(token string) string {
	key := strings.ToLower(token)
	if skill, ok := n.exact[key]; ok {
		return skill
	}

	if skill, ok := n.fuzzy(key); ok {
		return skill
	}

	return capitalize(token)
}

func (n *Normalizer) fuzzy(key string) (string, bool) {
	keyLen := utf8.RuneCountInString(key)
	if keyLen < n.minFuzzy {
		return "", false
	}

	best := -1
	bestScore := n.threshold
	for i, candidate := range n.lower {
		longest := max(keyLen, utf8.RuneCountInString(candidate))
		score := float64(edlib.OSADamerauLevenshteinDistance(key, candidate)) / float64(longest)
		if score <= bestScore && (best == -1 || score < bestScore) {
			best = i
			bestScore = score
		}
	}

	if best == -1 {
		return "", false
	}
	return n.canonical[best], true
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
