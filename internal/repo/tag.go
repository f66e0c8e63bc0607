package repo

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// BulkAddTags links videoID with every name in tags, creating any tag
// row that doesn't exist yet, atomically (spec §3 Tag/VideoTag
// many-to-many relation).
func (r *Repo) BulkAddTags(ctx context.Context, videoID string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin bulk_add_tags transaction: %w", err)
	}
	defer tx.Rollback()

	vid, err := r.videoInternalID(tx, videoID)
	if err != nil {
		return err
	}

	for _, name := range tags {
		tagID, err := upsertTagID(ctx, tx, r.sb, name)
		if err != nil {
			return err
		}
		if err := linkVideoTag(ctx, tx, r.sb, vid, tagID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk_add_tags transaction: %w", err)
	}
	return nil
}

// upsertTagID returns the id of the tags row named name, creating it
// if absent.
func upsertTagID(ctx context.Context, run sq.BaseRunner, sb sq.StatementBuilderType, name string) (int64, error) {
	query, args, err := sb.Insert("tags").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT(name) DO UPDATE SET name = excluded.name").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build tag upsert query: %w", err)
	}
	if _, err := run.Exec(query, args...); err != nil {
		return 0, fmt.Errorf("failed to upsert tag %q: %w", name, err)
	}

	row := sb.Select("id").From("tags").Where(sq.Eq{"name": name}).RunWith(run).QueryRow()
	var id int64
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("tag %q vanished after upsert", name)
		}
		return 0, fmt.Errorf("failed to read tag id for %q: %w", name, err)
	}
	return id, nil
}

// linkVideoTag inserts the video_tags join row, ignoring the write if
// the pair is already linked.
func linkVideoTag(ctx context.Context, run sq.BaseRunner, sb sq.StatementBuilderType, videoInternalID, tagID int64) error {
	query, args, err := sb.Insert("video_tags").
		Columns("video_id", "tag_id").
		Values(videoInternalID, tagID).
		Suffix("ON CONFLICT(video_id, tag_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build video_tags link query: %w", err)
	}
	if _, err := run.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to link video %d to tag %d: %w", videoInternalID, tagID, err)
	}
	return nil
}
