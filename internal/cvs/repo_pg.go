package cvs

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new CV record.
func (r *PGRepo) Create(ctx context.Context, cv CV) error {
	const query = `
INSERT INTO cvs (id, user_id, filename, content, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		cv.ID,
		cv.UserID,
		cv.Filename,
		cv.Content,
		cv.CreatedAt,
	)
	return err
}

// GetByID fetches a CV record by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, cvID string) (CV, error) {
	const query = `
SELECT id, user_id, filename, content, created_at
FROM cvs
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var cv CV
	err := r.DB.QueryRowContext(ctx, query, userID, cvID).Scan(
		&cv.ID,
		&cv.UserID,
		&cv.Filename,
		&cv.Content,
		&cv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CV{}, ErrNotFound
		}
		return CV{}, err
	}
	return cv, nil
}

// ListByUser lists a user's CV records, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]CV, error) {
	const query = `
SELECT id, user_id, filename, content, created_at
FROM cvs
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CV
	for rows.Next() {
		var cv CV
		if err := rows.Scan(
			&cv.ID,
			&cv.UserID,
			&cv.Filename,
			&cv.Content,
			&cv.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
	return out, rows.Err()
}

// Delete removes a CV record owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, cvID string) error {
	const query = `
DELETE FROM cvs
WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, cvID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
