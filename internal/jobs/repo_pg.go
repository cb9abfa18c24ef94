package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job listing.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, title, company, job_type, location, description, salary, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	description := job.Description
	if len(description) == 0 {
		description = json.RawMessage(`{}`)
	}
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.Company,
		job.Type,
		job.Location,
		[]byte(description),
		job.Salary,
		job.CreatedAt,
	)
	return err
}

// List returns all job listings, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Job, error) {
	const query = `
SELECT id, title, company, job_type, location, description, salary, created_at
FROM jobs
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var job Job
		var description []byte
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Company,
			&job.Type,
			&job.Location,
			&description,
			&job.Salary,
			&job.CreatedAt,
		); err != nil {
			return nil, err
		}
		job.Description = json.RawMessage(description)
		out = append(out, job)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
