package cvs

import "context"

// Repo defines persistence operations for CV records.
type Repo interface {
	Create(ctx context.Context, cv CV) error
	GetByID(ctx context.Context, userID, cvID string) (CV, error)
	ListByUser(ctx context.Context, userID string) ([]CV, error)
	Delete(ctx context.Context, userID, cvID string) error
}
