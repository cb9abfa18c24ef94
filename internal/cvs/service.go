package cvs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/masterchiefff/jobfit-server/internal/analysis"
)

const (
	messageComplete = "CV analysis complete."

	atsStatusApproved    = "Your CV is ATS approved."
	atsStatusNotApproved = "Your CV is not ATS approved."

	feedbackPass = "Great job! Your CV covers the expected keywords and sections."
	feedbackFail = "Your CV is missing some expected keywords or sections. Review the highlighted issues and resubmit."
)

// Service runs the analysis pipeline and manages stored CV records.
type Service struct {
	Ruleset *analysis.Ruleset
	Repo    Repo
}

// Analyze scores the extracted text, persists the CV record, and assembles
// the response payload. A persistence failure aborts the analysis since the
// returned cvId must reference a stored record.
func (s *Service) Analyze(ctx context.Context, userID, filename, text string) (AnalysisResponse, error) {
	keywordReport := s.Ruleset.ScoreKeywords(text)
	structureReport := s.Ruleset.ScoreStructure(text)
	rating := analysis.Rate(keywordReport, structureReport)
	annotated := s.Ruleset.Annotate(text, keywordReport.Missing, structureReport.Missing)

	cv := CV{
		ID:        uuid.NewString(),
		UserID:    userID,
		Filename:  filename,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, cv); err != nil {
		return AnalysisResponse{}, fmt.Errorf("persist cv: %w", err)
	}

	atsStatus := atsStatusNotApproved
	if rating.ATSApproved {
		atsStatus = atsStatusApproved
	}
	feedback := feedbackPass
	if rating.FailedChecks {
		feedback = feedbackFail
	}

	return AnalysisResponse{
		Message:        messageComplete,
		Score:          analysis.FormatScore(keywordReport.Score),
		StructureScore: analysis.FormatScore(structureReport.Score),
		Results: AnalysisResults{
			TotalKeywords:   keywordReport.Total,
			MatchedKeywords: keywordReport.Matched,
			MissingKeywords: keywordReport.Missing,
			MissingSections: structureReport.Missing,
			StructureChecks: structureReport.Checks,
			OverallScore:    analysis.FormatScore(rating.Overall),
			IsATSApproved:   rating.ATSApproved,
			CVID:            cv.ID,
			Filename:        cv.Filename,
		},
		IssuesHighlighted: annotated,
		ATSStatus:         atsStatus,
		FailedChecks:      rating.FailedChecks,
		Feedback:          feedback,
	}, nil
}

// List returns a user's stored CV records.
func (s *Service) List(ctx context.Context, userID string) ([]CV, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns one stored CV record.
func (s *Service) Get(ctx context.Context, userID, cvID string) (CV, error) {
	if userID == "" || cvID == "" {
		return CV{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, cvID)
}

// Delete removes a stored CV record.
func (s *Service) Delete(ctx context.Context, userID, cvID string) error {
	if userID == "" || cvID == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, cvID)
}
