package cvs

import "time"

// AnalysisResults carries the itemized analysis outcome inside the payload.
type AnalysisResults struct {
	TotalKeywords   int             `json:"totalKeywords"`
	MatchedKeywords int             `json:"matchedKeywords"`
	MissingKeywords []string        `json:"missingKeywords"`
	MissingSections []string        `json:"missingSections"`
	StructureChecks map[string]bool `json:"structureChecks"`
	OverallScore    string          `json:"overallScore"`
	IsATSApproved   bool            `json:"isATSApproved"`
	CVID            string          `json:"cvId"`
	Filename        string          `json:"filename"`
}

// AnalysisResponse is the payload returned after a résumé analysis.
type AnalysisResponse struct {
	Message           string          `json:"message"`
	Score             string          `json:"score"`
	StructureScore    string          `json:"structureScore"`
	Results           AnalysisResults `json:"results"`
	IssuesHighlighted string          `json:"issuesHighlighted"`
	ATSStatus         string          `json:"atsStatus"`
	FailedChecks      bool            `json:"failedChecks"`
	Feedback          string          `json:"feedback"`
}

// CVResponse is the outward-facing representation of a stored CV record.
type CVResponse struct {
	CVID      string `json:"cvId"`
	Filename  string `json:"filename"`
	CreatedAt string `json:"createdAt"`
}

func toResponse(cv CV) CVResponse {
	return CVResponse{
		CVID:      cv.ID,
		Filename:  cv.Filename,
		CreatedAt: cv.CreatedAt.UTC().Format(time.RFC3339),
	}
}
