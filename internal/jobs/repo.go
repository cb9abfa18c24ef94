package jobs

import "context"

// Repo defines persistence operations for job listings.
type Repo interface {
	Create(ctx context.Context, job Job) error
	List(ctx context.Context) ([]Job, error)
}
