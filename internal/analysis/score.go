package analysis

// KeywordReport is the outcome of scoring a text against the vocabulary.
type KeywordReport struct {
	Total   int
	Matched int
	Missing []string
	Score   float64
}

// StructureReport is the outcome of checking a text for expected sections.
type StructureReport struct {
	Checks  map[string]bool
	Missing []string
	Score   float64
}

// ScoreKeywords tests every vocabulary keyword against the text using
// case-insensitive whole-word matching. Missing keywords keep vocabulary
// order. The score keeps full float precision; callers format at the edge.
func (r *Ruleset) ScoreKeywords(text string) KeywordReport {
	report := KeywordReport{
		Total:   len(r.Keywords),
		Missing: []string{},
	}
	for i, pat := range r.keywordPatterns {
		if pat.MatchString(text) {
			report.Matched++
		} else {
			report.Missing = append(report.Missing, r.Keywords[i])
		}
	}
	if report.Total > 0 {
		report.Score = float64(report.Matched) / float64(report.Total) * 100
	}
	return report
}

// ScoreStructure tests every section heading pattern against the text.
// Missing sections keep checklist order.
func (r *Ruleset) ScoreStructure(text string) StructureReport {
	report := StructureReport{
		Checks:  make(map[string]bool, len(r.Sections)),
		Missing: []string{},
	}
	present := 0
	for i, pat := range r.sectionPatterns {
		found := pat.MatchString(text)
		report.Checks[r.Sections[i].ID] = found
		if found {
			present++
		} else {
			report.Missing = append(report.Missing, r.Sections[i].ID)
		}
	}
	if len(r.Sections) > 0 {
		report.Score = float64(present) / float64(len(r.Sections)) * 100
	}
	return report
}
