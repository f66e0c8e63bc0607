package database

import (
	"database/sql"
	"fmt"
)

// initChannelsTable creates the channels table (spec §3: channel_id
// and channel_url are both unique).
func initChannelsTable(tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS channels (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		channel_id TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL DEFAULT '',
		channel_url TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		custom_url TEXT NOT NULL DEFAULT '',
		follower_count INTEGER NOT NULL DEFAULT 0,
		view_count INTEGER NOT NULL DEFAULT 0,
		video_count INTEGER NOT NULL DEFAULT 0,
		published_at TIMESTAMP,
		country TEXT NOT NULL DEFAULT '',
		list_name TEXT NOT NULL DEFAULT '',
		last_update TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_channels_channel_id ON channels(channel_id);
	CREATE INDEX IF NOT EXISTS idx_channels_url ON channels(channel_url);
	`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create channels table: %w", err)
	}
	return nil
}

// initChannelHistoryTable creates the append-only channel_history
// table (spec §3).
func initChannelHistoryTable(tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS channel_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		channel_id TEXT NOT NULL REFERENCES channels(channel_id) ON DELETE CASCADE,
		follower_count INTEGER NOT NULL DEFAULT 0,
		view_count INTEGER NOT NULL DEFAULT 0,
		video_count INTEGER NOT NULL DEFAULT 0,
		recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_channel_history_channel_id ON channel_history(channel_id);
	CREATE INDEX IF NOT EXISTS idx_channel_history_recorded_at ON channel_history(recorded_at);
	`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create channel_history table: %w", err)
	}
	return nil
}

// initVideosTable creates the videos table. channel_id references
// channels(channel_id) so every video belongs to an existing channel
// (spec §3 invariant).
func initVideosTable(tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS videos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id TEXT NOT NULL UNIQUE,
		channel_id TEXT NOT NULL REFERENCES channels(channel_id) ON DELETE CASCADE,
		url TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		duration INTEGER NOT NULL DEFAULT 0,
		view_count INTEGER NOT NULL DEFAULT 0,
		like_count INTEGER,
		comment_count INTEGER NOT NULL DEFAULT 0,
		upload_date TIMESTAMP,
		default_audio_language TEXT NOT NULL DEFAULT '',
		last_update TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_videos_channel_id ON videos(channel_id);
	CREATE INDEX IF NOT EXISTS idx_videos_video_id ON videos(video_id);
	CREATE INDEX IF NOT EXISTS idx_videos_upload_date ON videos(upload_date);
	`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create videos table: %w", err)
	}
	return nil
}

// initVideoHistoryTable creates the append-only video_history table
// (spec §3).
func initVideoHistoryTable(tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS video_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id TEXT NOT NULL REFERENCES videos(video_id) ON DELETE CASCADE,
		view_count INTEGER NOT NULL DEFAULT 0,
		like_count INTEGER NOT NULL DEFAULT 0,
		comment_count INTEGER NOT NULL DEFAULT 0,
		recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_video_history_video_id ON video_history(video_id);
	`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create video_history table: %w", err)
	}
	return nil
}

// initTagsTable and initVideoTagsTable implement the Tag/VideoTag
// many-to-many relation (spec §3).
func initTagsTable(tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);
	`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create tags table: %w", err)
	}
	return nil
}

func initVideoTagsTable(tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS video_tags (
		video_id INTEGER NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
		tag_id INTEGER NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		PRIMARY KEY (video_id, tag_id)
	);
	`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create video_tags table: %w", err)
	}
	return nil
}

// initThumbnailsTable enforces exactly-one-owner via a CHECK
// constraint (spec §3 invariant).
func initThumbnailsTable(tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS thumbnails (
		id TEXT PRIMARY KEY,
		video_id INTEGER REFERENCES videos(id) ON DELETE CASCADE,
		channel_id TEXT REFERENCES channels(channel_id) ON DELETE CASCADE,
		url TEXT NOT NULL UNIQUE,
		width INTEGER NOT NULL DEFAULT 0,
		height INTEGER NOT NULL DEFAULT 0,
		thumbnail_id TEXT NOT NULL DEFAULT '',
		thumbnail_path TEXT NOT NULL DEFAULT '',
		CHECK ((video_id IS NOT NULL) + (channel_id IS NOT NULL) = 1)
	);
	CREATE INDEX IF NOT EXISTS idx_thumbnails_video_id ON thumbnails(video_id);
	CREATE INDEX IF NOT EXISTS idx_thumbnails_channel_id ON thumbnails(channel_id);
	`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create thumbnails table: %w", err)
	}
	return nil
}

// initVideoFormatsTable creates the video_formats table, unique on
// (video_id, format_id) (spec §3).
func initVideoFormatsTable(tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS video_formats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id INTEGER NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
		format_id TEXT NOT NULL DEFAULT '',
		ext TEXT NOT NULL DEFAULT '',
		resolution TEXT NOT NULL DEFAULT '',
		fps REAL NOT NULL DEFAULT 0,
		audio_channels INTEGER NOT NULL DEFAULT 0,
		filesize INTEGER NOT NULL DEFAULT 0,
		tbr REAL NOT NULL DEFAULT 0,
		protocol TEXT NOT NULL DEFAULT '',
		vcodec TEXT NOT NULL DEFAULT '',
		acodec TEXT NOT NULL DEFAULT '',
		asr INTEGER NOT NULL DEFAULT 0,
		width INTEGER NOT NULL DEFAULT 0,
		height INTEGER NOT NULL DEFAULT 0,
		dynamic_range TEXT NOT NULL DEFAULT '',
		language TEXT NOT NULL DEFAULT '',
		quality INTEGER NOT NULL DEFAULT 0,
		has_drm INTEGER NOT NULL DEFAULT 0,
		filesize_approx INTEGER NOT NULL DEFAULT 0,
		file_path TEXT NOT NULL DEFAULT '',
		is_downloaded INTEGER NOT NULL DEFAULT 0,
		UNIQUE(video_id, format_id)
	);
	CREATE INDEX IF NOT EXISTS idx_video_formats_video_id ON video_formats(video_id);
	`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create video_formats table: %w", err)
	}
	return nil
}
