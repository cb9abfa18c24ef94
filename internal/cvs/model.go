package cvs

import "time"

// CV is a persisted résumé record: the extracted text plus ownership metadata.
type CV struct {
	ID        string
	UserID    string
	Filename  string
	Content   string
	CreatedAt time.Time
}
