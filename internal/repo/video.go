package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"ytwatch/internal/models"
)

// AddVideo persists a freshly combined video record (spec §4.4
// combine_video output, §4.3 add_video): the video row, its tags, and
// its thumbnails are written atomically in one transaction so a crash
// mid-write never leaves an orphaned tag link or thumbnail.
func (r *Repo) AddVideo(ctx context.Context, channelID string, v models.Video) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin add_video transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := r.sb.Insert("videos").
		Columns(
			"video_id", "channel_id", "url", "title", "description", "duration",
			"view_count", "like_count", "comment_count", "upload_date",
			"default_audio_language",
		).
		Values(
			v.VideoID, channelID, v.URL, v.Title, v.Description, v.Duration,
			v.ViewCount, v.LikeCount, v.CommentCount, nullableTime(v.HasUploadDate, v.UploadDate),
			v.DefaultAudioLanguage,
		).
		Suffix(`ON CONFLICT(video_id) DO UPDATE SET
			url = excluded.url,
			title = excluded.title,
			description = excluded.description,
			duration = excluded.duration,
			view_count = excluded.view_count,
			like_count = excluded.like_count,
			comment_count = excluded.comment_count,
			upload_date = COALESCE(videos.upload_date, excluded.upload_date),
			default_audio_language = excluded.default_audio_language,
			last_update = CURRENT_TIMESTAMP`).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build add_video query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("failed to add video %q: %w", v.VideoID, err)
	}

	vid, err := r.videoInternalID(tx, v.VideoID)
	if err != nil {
		return 0, err
	}

	for _, name := range v.Tags {
		tagID, err := upsertTagID(ctx, tx, r.sb, name)
		if err != nil {
			return 0, err
		}
		if err := linkVideoTag(ctx, tx, r.sb, vid, tagID); err != nil {
			return 0, err
		}
	}

	for _, t := range v.Thumbnails {
		t.VideoID = v.VideoID
		if err := addThumbnailTx(ctx, tx, r.sb, t); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit add_video transaction: %w", err)
	}
	return vid, nil
}

func nullableTime(ok bool, t interface{ IsZero() bool }) interface{} {
	if !ok || t.IsZero() {
		return nil
	}
	return t
}

// UpdateVideo rewrites a video's mutable fields without touching
// created_at (spec §4.3). It writes title, description and the
// view/like/comment counts in one statement; the video's tag links and
// thumbnails are left unchanged.
func (r *Repo) UpdateVideo(ctx context.Context, v models.Video) error {
	query, args, err := r.sb.Update("videos").
		Set("title", v.Title).
		Set("description", v.Description).
		Set("view_count", v.ViewCount).
		Set("like_count", v.LikeCount).
		Set("comment_count", v.CommentCount).
		Set("last_update", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"video_id": v.VideoID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update_video query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update video %q: %w", v.VideoID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected updating video %q: %w", v.VideoID, err)
	}
	if n == 0 {
		return ErrVideoNotFound
	}
	return nil
}

// AddVideoHistory appends a point-in-time counters snapshot (spec §3,
// §4.5 history loop).
func (r *Repo) AddVideoHistory(ctx context.Context, h models.VideoHistory) error {
	query, args, err := r.sb.Insert("video_history").
		Columns("video_id", "view_count", "like_count", "comment_count").
		Values(h.VideoID, h.ViewCount, h.LikeCount, h.CommentCount).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build video history insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add video history for %q: %w", h.VideoID, err)
	}
	return nil
}

// GetVideoIDsWithoutFormats returns up to limit video IDs with no
// enumerated download formats yet, for the formats loop (spec §4.5).
func (r *Repo) GetVideoIDsWithoutFormats(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.sb.Select("videos.video_id").
		From("videos").
		LeftJoin("video_formats ON video_formats.video_id = videos.id").
		Where("video_formats.id IS NULL").
		OrderBy("videos.id").
		Limit(uint64(limit)).
		RunWith(r.db).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos without formats: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan video id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetVideosWithoutUploadDate returns up to limit video IDs still
// missing an upload_date, excluding tombstoned videos so a persistently
// un-enrichable video doesn't keep this set non-empty forever (spec
// §4.3 get_videos_without_upload_date, §7 invalid-video lifecycle).
func (r *Repo) GetVideosWithoutUploadDate(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.sb.Select("video_id").
		From("videos").
		Where("upload_date IS NULL AND (like_count IS NULL OR like_count != -1)").
		OrderBy("id").
		Limit(uint64(limit)).
		RunWith(r.db).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos without upload date: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan video id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// NewAndExistingVideoIDs implements fusion.PartitionQuerier: splits
// candidate video IDs against what's already stored for channelID.
func (r *Repo) NewAndExistingVideoIDs(ids []string, channelID string) ([]string, []string, error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}

	rows, err := r.sb.Select("video_id").
		From("videos").
		Where(sq.Eq{"video_id": ids, "channel_id": channelID}).
		RunWith(r.db).Query()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to partition video ids for channel %q: %w", channelID, err)
	}
	defer rows.Close()

	existing := make(map[string]struct{}, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, nil, fmt.Errorf("failed to scan existing video id: %w", err)
		}
		existing[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var newIDs, knownIDs []string
	for _, id := range ids {
		if _, ok := existing[id]; ok {
			knownIDs = append(knownIDs, id)
		} else {
			newIDs = append(newIDs, id)
		}
	}
	return newIDs, knownIDs, nil
}

// SetVideoAsInvalid tombstones a video that the extractor can no
// longer resolve, using the like_count sentinel (spec §3, §7).
func (r *Repo) SetVideoAsInvalid(ctx context.Context, videoID string) error {
	query, args, err := r.sb.Update("videos").
		Set("like_count", -1).
		Set("last_update", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"video_id": videoID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set_video_as_invalid query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark video %q invalid: %w", videoID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVideoNotFound
	}
	return nil
}

// ResetAllInvalidVideos clears every tombstone, giving previously
// un-enrichable videos another chance once the pending queue drains
// (spec §9 Open Question resolution: runs after drain, not per-sweep).
func (r *Repo) ResetAllInvalidVideos(ctx context.Context) (int64, error) {
	query, args, err := r.sb.Update("videos").
		Set("like_count", 0).
		Where(sq.Eq{"like_count": -1}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build reset_all_invalid_videos query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to reset invalid videos: %w", err)
	}
	return res.RowsAffected()
}
