// Package sections splits raw résumé text into named blocks.
package sections

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Name identifies a résumé section.
type Name string

const (
	Experience Name = "experience"
	Education  Name = "education"
	Skills     Name = "skills"
	Projects   Name = "projects"
	Contact    Name = "contact"
	Other      Name = "other"
)

// maxHeaderLength is the rune count a header line must stay below.
const maxHeaderLength = 50

type header struct {
	name    Name
	pattern *regexp.Regexp
}

// headers are checked in order; the first match wins.
var headers = []header{
	{Experience, regexp.MustCompile(`(?i)^(work\s+experience|experience|employment\s+history|professional\s+experience|work\s+history)\b`)},
	{Education, regexp.MustCompile(`(?i)^(education|academic\s+background|qualifications|academic\s+history|degrees)\b`)},
	{Skills, regexp.MustCompile(`(?i)^(skills|technical\s+skills|technologies|core\s+competencies|expertise)\b`)},
	{Projects, regexp.MustCompile(`(?i)^(projects|personal\s+projects|academic\s+projects|portfolio)\b`)},
	{Contact, regexp.MustCompile(`(?i)^(contact|personal\s+details|contact\s+information)\b`)},
}

// Map holds the text block of every section. Lines keep their input order.
type Map struct {
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Skills     string `json:"skills"`
	Projects   string `json:"projects"`
	Contact    string `json:"contact"`
	Other      string `json:"other"`
}

// Get returns the block stored under name.
func (m Map) Get(name Name) string {
	switch name {
	case Experience:
		return m.Experience
	case Education:
		return m.Education
	case Skills:
		return m.Skills
	case Projects:
		return m.Projects
	case Contact:
		return m.Contact
	default:
		return m.Other
	}
}

// Names returns all section names in document-model order.
func Names() []Name {
	return []Name{Experience, Education, Skills, Projects, Contact, Other}
}

// Parse assigns every non-blank line of text to the section opened by the
// closest preceding header. Header lines themselves are dropped.
func Parse(text string) Map {
	blocks := make(map[Name][]string, len(headers)+1)
	current := Other

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name, ok := matchHeader(line); ok {
			current = name
			continue
		}

		blocks[current] = append(blocks[current], line)
	}

	join := func(name Name) string { return strings.Join(blocks[name], "\n") }

	return Map{
		Experience: join(Experience),
		Education:  join(Education),
		Skills:     join(Skills),
		Projects:   join(Projects),
		Contact:    join(Contact),
		Other:      join(Other),
	}
}

func matchHeader(line string) (Name, bool) {
	if utf8.RuneCountInString(line) >= maxHeaderLength {
		return "", false
	}

	candidate := strings.ReplaceAll(line, ":", "")
	for _, h := range headers {
		if h.pattern.MatchString(candidate) {
			return h.name, true
		}
	}
	return "", false
}
