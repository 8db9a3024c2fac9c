// Package entities pulls contact details and named entities out of résumé text.
package entities

import (
	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.]?)?\(?\d{3}\)?[-.]?\d{3}[-.]?\d{4}`)
)

// Tagger recognises organisation and person names in free text.
type Tagger interface {
	Organizations(text string) []string
	People(text string) []string
}

// Entities is the extraction result. Every list is deduplicated in order of first occurrence.
type Entities struct {
	Emails        []string `json:"emails"`
	Phones        []string `json:"phones"`
	Organizations []string `json:"organizations"`
	People        []string `json:"people"`
}

// Extractor combines the fixed contact patterns with a Tagger.
type Extractor struct {
	tagger Tagger
}

// New returns an Extractor. A nil tagger yields empty organisation and people lists.
func New(tagger Tagger) *Extractor {
	return &Extractor{tagger: tagger}
}

// Extract returns the entities found in text.
func (e *Extractor) Extract(text string) Entities {
	result := Entities{
		Emails:        unique(emailPattern.FindAllString(text, -1)),
		Phones:        unique(phonePattern.FindAllString(text, -1)),
		Organizations: []string{},
		People:        []string{},
	}

	if e == nil || e.tagger == nil {
		return result
	}

	result.Organizations = unique(e.tagger.Organizations(text))

	// The author's name is expected to come first.
	people := unique(e.tagger.People(text))
	if len(people) > 1 {
		people = people[:1]
	}
	result.People = people

	return result
}

// HasEmail reports whether text contains an email address.
func HasEmail(text string) bool {
	return emailPattern.MatchString(text)
}

// HasPhone reports whether text contains a phone number.
func HasPhone(text string) bool {
	return phonePattern.MatchString(text)
}

func unique(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
