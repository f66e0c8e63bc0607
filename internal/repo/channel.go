package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"ytwatch/internal/models"
)

// UpsertChannel inserts a channel or, if channel_id already exists,
// updates its mutable fields in place (spec §4.3 upsert_channel).
// created_at is preserved across updates; last_update always advances.
func (r *Repo) UpsertChannel(ctx context.Context, c models.Channel) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin upsert_channel transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := r.sb.Insert("channels").
		Columns(
			"channel_id", "title", "channel_url", "description", "custom_url",
			"follower_count", "view_count", "video_count", "published_at",
			"country", "list_name",
		).
		Values(
			c.ChannelID, c.Title, c.ChannelURL, c.Description, c.CustomURL,
			c.FollowerCount, c.ViewCount, c.VideoCount, c.PublishedAt,
			c.Country, c.ListName,
		).
		Suffix(`ON CONFLICT(channel_id) DO UPDATE SET
			title = excluded.title,
			channel_url = excluded.channel_url,
			description = excluded.description,
			custom_url = excluded.custom_url,
			follower_count = excluded.follower_count,
			view_count = excluded.view_count,
			video_count = excluded.video_count,
			published_at = excluded.published_at,
			country = excluded.country,
			list_name = excluded.list_name,
			last_update = CURRENT_TIMESTAMP`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert channel query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert channel %q: %w", c.ChannelID, err)
	}

	for _, t := range c.Thumbnails {
		t.ChannelID = c.ChannelID
		t.VideoID = ""
		if err := addThumbnailTx(ctx, tx, r.sb, t); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert_channel transaction: %w", err)
	}
	return nil
}

// AddChannelHistory appends a point-in-time counters snapshot (spec §3,
// §4.5 history loop).
func (r *Repo) AddChannelHistory(ctx context.Context, h models.ChannelHistory) error {
	query, args, err := r.sb.Insert("channel_history").
		Columns("channel_id", "follower_count", "view_count", "video_count").
		Values(h.ChannelID, h.FollowerCount, h.ViewCount, h.VideoCount).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build channel history insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add channel history for %q: %w", h.ChannelID, err)
	}
	return nil
}

// GetChannelByID fetches one channel by its external channel_id.
func (r *Repo) GetChannelByID(ctx context.Context, channelID string) (models.Channel, error) {
	row := r.sb.Select(
		"id", "channel_id", "title", "channel_url", "description", "custom_url",
		"follower_count", "view_count", "video_count", "published_at",
		"country", "list_name", "last_update", "created_at",
	).From("channels").Where(sq.Eq{"channel_id": channelID}).RunWith(r.db).QueryRowContext(ctx)

	var c models.Channel
	if err := row.Scan(
		&c.ID, &c.ChannelID, &c.Title, &c.ChannelURL, &c.Description, &c.CustomURL,
		&c.FollowerCount, &c.ViewCount, &c.VideoCount, &c.PublishedAt,
		&c.Country, &c.ListName, &c.LastUpdate, &c.CreatedAt,
	); err != nil {
		return models.Channel{}, ErrChannelNotFound
	}
	return c, nil
}

// ListChannels returns every known channel, ordered by channel_id so
// iteration order is deterministic.
func (r *Repo) ListChannels(ctx context.Context) ([]models.Channel, error) {
	rows, err := r.sb.Select(
		"id", "channel_id", "title", "channel_url", "description", "custom_url",
		"follower_count", "view_count", "video_count", "published_at",
		"country", "list_name", "last_update", "created_at",
	).From("channels").OrderBy("channel_id").RunWith(r.db).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	defer rows.Close()

	var out []models.Channel
	for rows.Next() {
		var c models.Channel
		if err := rows.Scan(
			&c.ID, &c.ChannelID, &c.Title, &c.ChannelURL, &c.Description, &c.CustomURL,
			&c.FollowerCount, &c.ViewCount, &c.VideoCount, &c.PublishedAt,
			&c.Country, &c.ListName, &c.LastUpdate, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan channel row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
