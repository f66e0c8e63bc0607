package repo

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"ytwatch/internal/models"
)

// AddThumbnail persists a thumbnail owned by exactly one of a video or
// a channel, enforced at the schema level by thumbnails' CHECK
// constraint (spec §3 invariant). t.VideoID, when set, is the
// thumbnail's owning external video_id; t.ChannelID the owning
// channel_id. Exactly one must be set.
func (r *Repo) AddThumbnail(ctx context.Context, t models.Thumbnail) error {
	if (t.VideoID == "") == (t.ChannelID == "") {
		return fmt.Errorf("%w: thumbnail must belong to exactly one of video or channel", ErrIntegrityViolation)
	}
	return addThumbnailTx(ctx, r.db, r.sb, t)
}

// addThumbnailTx is shared by AddThumbnail and AddVideo's atomic write
// path; run may be *sql.DB or *sql.Tx.
func addThumbnailTx(ctx context.Context, run sq.BaseRunner, sb sq.StatementBuilderType, t models.Thumbnail) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	var videoInternal sql.NullInt64
	if t.VideoID != "" {
		id, err := videoInternalIDFor(run, sb, t.VideoID)
		if err != nil {
			return err
		}
		videoInternal = sql.NullInt64{Int64: id, Valid: true}
	}

	var channelRef interface{}
	if t.ChannelID != "" {
		channelRef = t.ChannelID
	}

	query, args, err := sb.Insert("thumbnails").
		Columns("id", "video_id", "channel_id", "url", "width", "height", "thumbnail_id", "thumbnail_path").
		Values(t.ID, videoInternal, channelRef, t.URL, t.Width, t.Height, t.ThumbnailID, t.ThumbnailPath).
		Suffix(`ON CONFLICT(url) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			thumbnail_id = excluded.thumbnail_id,
			thumbnail_path = excluded.thumbnail_path`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add_thumbnail query: %w", err)
	}
	if _, err := run.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to add thumbnail %q: %w", t.URL, err)
	}
	return nil
}

// videoInternalIDFor is the BaseRunner-parameterized twin of
// Repo.videoInternalID, usable inside a shared transaction helper.
func videoInternalIDFor(run sq.BaseRunner, sb sq.StatementBuilderType, videoID string) (int64, error) {
	row := sb.Select("id").From("videos").Where(sq.Eq{"video_id": videoID}).RunWith(run).QueryRow()
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, ErrVideoNotFound
	}
	return id, nil
}
