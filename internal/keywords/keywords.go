// Package keywords ranks job-description keywords and measures how well a
// résumé covers them.
package keywords

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const minTokenLength = 3

// Record is one row of the keyword density table.
type Record struct {
	Keyword     string `json:"keyword"`
	IsPhrase    bool   `json:"isPhrase"`
	JDCount     int    `json:"jdCount"`
	ResumeCount int    `json:"resumeCount"`
}

// Missing reports whether the résumé never mentions the keyword.
func (r Record) Missing() bool {
	return r.ResumeCount == 0
}

// Analysis is the keyword gap between a résumé and a job description.
type Analysis struct {
	Density     []Record `json:"jdSkillDensity"`
	Missing     []string `json:"missingKeywords"`
	Suggestions []string `json:"keywordSuggestions"`
}

// Analyze extracts ranked keywords from jobDescription and counts them in resume.
func Analyze(resume, jobDescription string) Analysis {
	lowerResume := strings.ToLower(resume)

	ranked := Extract(jobDescription)

	result := Analysis{
		Density:     make([]Record, 0, len(ranked)),
		Missing:     []string{},
		Suggestions: []string{},
	}
	seen := make(map[string]struct{})

	for _, rec := range ranked {
		rec.ResumeCount = countInResume(lowerResume, rec)
		result.Density = append(result.Density, rec)

		if !rec.Missing() {
			continue
		}
		if _, ok := seen[rec.Keyword]; ok {
			continue
		}
		seen[rec.Keyword] = struct{}{}
		result.Missing = append(result.Missing, rec.Keyword)
		result.Suggestions = append(result.Suggestions, Suggestion(rec.Keyword))
	}

	return result
}

// Suggestion is the gap message for a missing keyword.
func Suggestion(keyword string) string {
	return fmt.Sprintf("The job emphasizes %q, but it's missing from your resume.", keyword)
}

// Extract returns the job-description keywords: detected phrases first in
// dictionary order, then single tokens by descending frequency.
func Extract(jobDescription string) []Record {
	lowerJD := strings.ToLower(jobDescription)

	var records []Record
	covered := make(map[string]struct{})

	for _, phrase := range phrases {
		count := strings.Count(lowerJD, phrase)
		if count == 0 {
			continue
		}
		records = append(records, Record{Keyword: phrase, IsPhrase: true, JDCount: count})
		for _, word := range tokenize(phrase) {
			covered[word] = struct{}{}
		}
	}

	freq := make(map[string]int)
	var order []string
	for _, token := range tokenize(lowerJD) {
		if !keepToken(token, covered) {
			continue
		}
		if freq[token] == 0 {
			order = append(order, token)
		}
		freq[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	for _, token := range order {
		records = append(records, Record{Keyword: token, JDCount: freq[token]})
	}

	if records == nil {
		return []Record{}
	}
	return records
}

func keepToken(token string, covered map[string]struct{}) bool {
	if len(token) < minTokenLength {
		return false
	}
	if _, ok := stopwords[token]; ok {
		return false
	}
	if _, ok := phraseSet[token]; ok {
		return false
	}
	if _, ok := covered[token]; ok {
		return false
	}
	return strings.ContainsFunc(token, unicode.IsLetter)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func countInResume(lowerResume string, rec Record) int {
	if !rec.IsPhrase {
		return countWord(lowerResume, rec.Keyword)
	}
	pattern := strings.ReplaceAll(regexp.QuoteMeta(rec.Keyword), " ", `\s+`)
	return len(regexp.MustCompile(pattern).FindAllStringIndex(lowerResume, -1))
}

// countWord counts occurrences of word not adjacent to other letters or
// digits. Unlike \b in RE2 it also treats non-ASCII letters as word runes.
func countWord(text, word string) int {
	if word == "" {
		return 0
	}

	count := 0
	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], word)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(word)

		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if !isWordRune(before) && !isWordRune(after) {
			count++
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return count
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
