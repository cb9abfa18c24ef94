package jobs

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for job listings.
type Service struct {
	Repo Repo
}

// Create validates and stores a new job listing.
func (s *Service) Create(ctx context.Context, job Job) (Job, error) {
	if strings.TrimSpace(job.Title) == "" || strings.TrimSpace(job.Company) == "" {
		return Job{}, ErrInvalidInput
	}
	if len(job.Description) > 0 && !json.Valid(job.Description) {
		return Job{}, ErrInvalidInput
	}

	job.ID = uuid.NewString()
	job.CreatedAt = time.Now().UTC()
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// List returns all job listings.
func (s *Service) List(ctx context.Context) ([]Job, error) {
	return s.Repo.List(ctx)
}
