package cvs

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]CV // userID -> CVs
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]CV)}
}

// Create appends a CV record for a user.
func (r *MemoryRepo) Create(ctx context.Context, cv CV) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[cv.UserID] = append(r.data[cv.UserID], cv)
	return nil
}

// GetByID returns a CV record by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, cvID string) (CV, error) {
	if err := ctx.Err(); err != nil {
		return CV{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cv := range r.data[userID] {
		if cv.ID == cvID {
			return cv, nil
		}
	}
	return CV{}, ErrNotFound
}

// ListByUser returns a user's CV records, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]CV, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	userCVs := r.data[userID]
	r.mu.RUnlock()

	out := make([]CV, len(userCVs))
	copy(out, userCVs)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a CV record owned by the user.
func (r *MemoryRepo) Delete(ctx context.Context, userID, cvID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	userCVs := r.data[userID]
	for i, cv := range userCVs {
		if cv.ID == cvID {
			r.data[userID] = append(userCVs[:i], userCVs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
