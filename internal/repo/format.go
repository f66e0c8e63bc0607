package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"ytwatch/internal/models"
)

// AddVideoFormat records one enumerated download format for a video,
// upserting on (video_id, format_id) so a re-run of the formats loop
// is idempotent (spec §3, §4.5 formats loop).
func (r *Repo) AddVideoFormat(ctx context.Context, f models.Format) error {
	vid, err := r.videoInternalID(r.db, f.VideoID)
	if err != nil {
		return err
	}

	query, args, err := r.sb.Insert("video_formats").
		Columns(
			"video_id", "format_id", "ext", "resolution", "fps", "audio_channels",
			"filesize", "tbr", "protocol", "vcodec", "acodec", "asr", "width",
			"height", "dynamic_range", "language", "quality", "has_drm",
			"filesize_approx", "file_path", "is_downloaded",
		).
		Values(
			vid, f.FormatID, f.Ext, f.Resolution, f.FPS, f.AudioChannels,
			f.Filesize, f.TBR, f.Protocol, f.VCodec, f.ACodec, f.ASR, f.Width,
			f.Height, f.DynamicRange, f.Language, f.Quality, f.HasDRM,
			f.FilesizeApprox, f.FilePath, f.IsDownloaded,
		).
		Suffix(`ON CONFLICT(video_id, format_id) DO UPDATE SET
			ext = excluded.ext,
			resolution = excluded.resolution,
			fps = excluded.fps,
			audio_channels = excluded.audio_channels,
			filesize = excluded.filesize,
			tbr = excluded.tbr,
			protocol = excluded.protocol,
			vcodec = excluded.vcodec,
			acodec = excluded.acodec,
			asr = excluded.asr,
			width = excluded.width,
			height = excluded.height,
			dynamic_range = excluded.dynamic_range,
			language = excluded.language,
			quality = excluded.quality,
			has_drm = excluded.has_drm,
			filesize_approx = excluded.filesize_approx,
			file_path = excluded.file_path,
			is_downloaded = excluded.is_downloaded`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add_video_format query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add format %q for video %q: %w", f.FormatID, f.VideoID, err)
	}
	return nil
}

// MarkFormatDownloaded flips is_downloaded and records the on-disk
// path of a downloaded format.
func (r *Repo) MarkFormatDownloaded(ctx context.Context, videoID, formatID, filePath string) error {
	vid, err := r.videoInternalID(r.db, videoID)
	if err != nil {
		return err
	}

	query, args, err := r.sb.Update("video_formats").
		Set("is_downloaded", true).
		Set("file_path", filePath).
		Where(sq.Eq{"video_id": vid, "format_id": formatID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark_format_downloaded query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark format %q downloaded for video %q: %w", formatID, videoID, err)
	}
	return nil
}
