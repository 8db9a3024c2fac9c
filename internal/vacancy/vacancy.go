package vacancy

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Vacancy is the subset of the HeadHunter vacancy object used to build a job description.
type Vacancy struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Experience struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"experience,omitempty"`
	Employer struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"employer,omitempty"`
	AlternateURL string `json:"alternate_url,omitempty"`
	Description  string `json:"description,omitempty"`
	KeySkills    []struct {
		Name string `json:"name,omitempty"`
	} `json:"key_skills,omitempty"`
}

// Text renders the vacancy as plain text: title, experience, description and key skills.
func (v *Vacancy) Text() (string, error) {
	description, err := HTMLToText(v.Description)
	if err != nil {
		return "", fmt.Errorf("convert description of vacancy %s: %w", v.ID, err)
	}

	var parts []string
	if name := strings.TrimSpace(v.Name); name != "" {
		parts = append(parts, name)
	}
	if exp := strings.TrimSpace(v.Experience.Name); exp != "" {
		parts = append(parts, "Experience: "+exp)
	}
	if description != "" {
		parts = append(parts, description)
	}

	skills := make([]string, 0, len(v.KeySkills))
	for _, s := range v.KeySkills {
		if name := strings.TrimSpace(s.Name); name != "" {
			skills = append(skills, name)
		}
	}
	if len(skills) > 0 {
		parts = append(parts, "Key skills: "+strings.Join(skills, ", "))
	}

	return strings.Join(parts, "\n\n"), nil
}

// HTMLToText flattens an HTML fragment into lines. List items become "- " bullets.
func HTMLToText(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("- ")
	doc.Find("p, li, div, ul, ol, h1, h2, h3, h4, h5, h6").AfterHtml("\n")

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n"), nil
}
