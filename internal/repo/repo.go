// Package repo is the Repository component (spec §4.3): the only
// code in the program that touches the store. Every write that
// spans more than one row happens inside a single *sql.Tx.
package repo

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"ytwatch/internal/database"
)

// Repo wraps a database handle with a squirrel statement builder
// configured for SQLite's "?" placeholders, following the teacher's
// internal/process query-builder wiring.
type Repo struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// New builds a Repo over an already-opened Database.
func New(d *database.Database) *Repo {
	return &Repo{
		db: d.DB,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// videoInternalID resolves a video's surrogate integer id from its
// external video_id, for the child tables (video_tags, thumbnails,
// video_formats) that reference videos(id) rather than videos(video_id).
func (r *Repo) videoInternalID(q sq.BaseRunner, videoID string) (int64, error) {
	return videoInternalIDFor(q, r.sb, videoID)
}
