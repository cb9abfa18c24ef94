package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// Section describes one expected resume section: how to detect its heading
// and what to show when it is absent.
type Section struct {
	ID          string
	DisplayName string
	Headings    []string
	Placeholder string
}

// Ruleset holds the keyword vocabulary and section checklist used by every
// analysis. It is built once at startup and never mutated, so a single
// instance is safe to share across concurrent requests.
type Ruleset struct {
	Keywords []string
	Sections []Section

	keywordPatterns []*regexp.Regexp
	sectionPatterns []*regexp.Regexp
}

// NewRuleset compiles matching patterns for the given vocabulary and sections.
// Keyword order and section order are preserved as authored; duplicates are
// kept and inflate the denominator.
func NewRuleset(keywords []string, sections []Section) (*Ruleset, error) {
	r := &Ruleset{
		Keywords:        keywords,
		Sections:        sections,
		keywordPatterns: make([]*regexp.Regexp, 0, len(keywords)),
		sectionPatterns: make([]*regexp.Regexp, 0, len(sections)),
	}
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return nil, fmt.Errorf("empty keyword in vocabulary")
		}
		pat, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compile keyword %q: %w", kw, err)
		}
		r.keywordPatterns = append(r.keywordPatterns, pat)
	}
	for _, sec := range sections {
		if sec.ID == "" || len(sec.Headings) == 0 {
			return nil, fmt.Errorf("section %q needs an id and at least one heading", sec.ID)
		}
		alts := make([]string, 0, len(sec.Headings))
		for _, h := range sec.Headings {
			alts = append(alts, regexp.QuoteMeta(h))
		}
		pat, err := regexp.Compile(`(?i)(?:` + strings.Join(alts, "|") + `)`)
		if err != nil {
			return nil, fmt.Errorf("compile section %q: %w", sec.ID, err)
		}
		r.sectionPatterns = append(r.sectionPatterns, pat)
	}
	return r, nil
}

// DefaultKeywords is the stock skill vocabulary.
var DefaultKeywords = []string{
	"UX/UI designer", "web development", "Python", "Node.js",
	"React.js", "Vue.js", "Polymer", "Lit Element",
	"PostgreSQL", "Docker", "Agile development",
}

// DefaultSections lists the expected resume sections in checklist order.
var DefaultSections = []Section{
	{
		ID:          "contactInfo",
		DisplayName: "Contact Info",
		Headings:    []string{"Contact", "Email", "Phone", "Address"},
		Placeholder: "Jane Doe | jane.doe@example.com | +1 555 0100 | City, Country",
	},
	{
		ID:          "summary",
		DisplayName: "Summary",
		Headings:    []string{"Summary", "Objective", "Profile"},
		Placeholder: "A short professional summary highlighting your strongest skills and goals.",
	},
	{
		ID:          "experience",
		DisplayName: "Experience",
		Headings:    []string{"Work Experience", "Experience", "Employment", "Professional Experience"},
		Placeholder: "Company Name - Role (2020 - 2024). Describe your responsibilities and achievements.",
	},
	{
		ID:          "education",
		DisplayName: "Education",
		Headings:    []string{"Education", "Degrees", "Certifications"},
		Placeholder: "University Name - Degree, graduation year.",
	},
	{
		ID:          "skills",
		DisplayName: "Skills",
		Headings:    []string{"Skills", "Technical Skills", "Core Competencies"},
		Placeholder: "List the tools, languages and frameworks you work with.",
	},
	{
		ID:          "projects",
		DisplayName: "Projects",
		Headings:    []string{"Projects", "Portfolio"},
		Placeholder: "Project Name - one line on what it does and what you built.",
	},
}

// DefaultRuleset builds the stock ruleset. Panics on compile failure since the
// defaults are fixed at build time.
func DefaultRuleset() *Ruleset {
	r, err := NewRuleset(DefaultKeywords, DefaultSections)
	if err != nil {
		panic(err)
	}
	return r
}

// sectionByID returns the section definition for an id, if present.
func (r *Ruleset) sectionByID(id string) (Section, bool) {
	for _, sec := range r.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}
