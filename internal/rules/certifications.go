package rules

import (
	"strconv"
	"strings"
)

const (
	// CertificationsName identifies the certification recommendation rule.
	CertificationsName = "certifications"

	maxCertifications = 5
)

type certificationGroup struct {
	key   string
	certs []string
}

var certificationMap = []certificationGroup{
	{"cloud", []string{"AWS Certified Cloud Practitioner", "Microsoft Azure Fundamentals (AZ-900)", "Google Cloud Digital Leader"}},
	{"aws", []string{"AWS Certified Solutions Architect - Associate", "AWS Certified Developer - Associate"}},
	{"azure", []string{"Microsoft Certified: Azure Administrator Associate", "Microsoft Certified: Azure Developer Associate"}},
	{"frontend", []string{"Meta Front-End Developer Professional Certificate", "Legacy Front End Development (FreeCodeCamp)"}},
	{"react", []string{"Meta Front-End Developer Professional Certificate"}},
	{"backend", []string{"OpenJS Node.js Services Developer (JSNSD)", "Meta Back-End Developer Professional Certificate"}},
	{"node", []string{"OpenJS Node.js Application Developer (JSNAD)"}},
	{"devops", []string{"Docker Certified Associate", "Certified Kubernetes Administrator (CKA)"}},
	{"data", []string{"Google Data Analytics Professional Certificate", "IBM Data Science Professional Certificate"}},
	{"security", []string{"CompTIA Security+", "Certified Ethical Hacker (CEH)"}},
	{"python", []string{"PCEP - Certified Entry-Level Python Programmer"}},
	{"java", []string{"Oracle Certified Professional: Java SE Programmer"}},
}

type certificationsRule struct {
	toggle
}

// NewCertifications creates the certification recommender. Recommendations
// are returned as suggestions.
func NewCertifications() Rule {
	return &certificationsRule{}
}

func (r *certificationsRule) Name() string { return CertificationsName }

func (r *certificationsRule) Evaluate(_ string, facts *Facts) Finding {
	finding := newFinding()
	finding.Suggestions = Recommend(facts.Skills, facts.JobDescription)
	finding.Details = map[string]string{"recommended": strconv.Itoa(len(finding.Suggestions))}
	return finding
}

// Recommend maps skills and job-description terms to certifications, in
// first-seen order, capped at five.
func Recommend(skills []string, jobDescription string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, maxCertifications)

	addGroup := func(group certificationGroup) {
		for _, cert := range group.certs {
			if _, ok := seen[cert]; ok {
				continue
			}
			seen[cert] = struct{}{}
			out = append(out, cert)
		}
	}

	for _, skill := range skills {
		key := strings.ToLower(skill)
		for _, group := range certificationMap {
			if key == group.key || strings.Contains(key, group.key) {
				addGroup(group)
			}
		}
	}

	jd := strings.ToLower(jobDescription)
	for _, group := range certificationMap {
		if strings.Contains(jd, group.key) {
			addGroup(group)
		}
	}

	if len(out) > maxCertifications {
		out = out[:maxCertifications]
	}
	return out
}

func (r *certificationsRule) Status() Status {
	return Status{
		Name:    r.Name(),
		Enabled: r.IsEnabled(),
		Reason:  r.reason,
		Details: map[string]string{
			"domains": strconv.Itoa(len(certificationMap)),
			"limit":   strconv.Itoa(maxCertifications),
		},
	}
}
