package monitor

import (
	"context"
	"errors"
	"fmt"

	"ytwatch/internal/domain/consts"
	"ytwatch/internal/extractor"
	"ytwatch/internal/logging"
)

// runFormatsLoop is worker 3 (spec §4.5): drains
// get_video_ids_without_formats(limit=50) by calling
// EA.get_video_formats and repository.add_video_format, on the same
// interval as the history loop.
func (m *Monitor) runFormatsLoop(ctx context.Context) {
	runEvery(ctx, consts.FormatsLoopInterval, 0, m.sweepFormats)
}

func (m *Monitor) sweepFormats(ctx context.Context) {
	ids, err := m.Repo.GetVideoIDsWithoutFormats(ctx, consts.FormatsBatchLimit)
	if err != nil {
		logging.L().Error().Err(err).Msg("get_video_ids_without_formats failed")
		return
	}

	for _, videoID := range ids {
		if ctx.Err() != nil {
			return
		}
		m.enumerateFormats(ctx, videoID)
	}

	pending, err := m.Repo.GetVideosWithoutUploadDate(ctx, consts.UploadDateBatchLimit)
	if err != nil {
		logging.L().Error().Err(err).Msg("get_videos_without_upload_date failed")
		return
	}
	if len(pending) == 0 {
		if n, err := m.Repo.ResetAllInvalidVideos(ctx); err != nil {
			logging.L().Error().Err(err).Msg("reset_all_invalid_videos failed")
		} else if n > 0 {
			logging.L().Info().Int64("count", n).Msg("reset invalid videos after pending queue drained")
		}
	}
}

func (m *Monitor) enumerateFormats(ctx context.Context, videoID string) {
	videoURL := fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
	formats, err := m.Extractor.VideoFormats(ctx, videoURL)
	if err != nil {
		if errors.Is(err, extractor.ErrUnavailable) || errors.Is(err, extractor.ErrNoData) {
			if invalidErr := m.Repo.SetVideoAsInvalid(ctx, videoID); invalidErr != nil {
				logging.L().Error().Err(invalidErr).Str("video_id", videoID).Msg("set_video_as_invalid failed")
			}
			return
		}
		logging.L().Warn().Err(err).Str("video_id", videoID).Msg("get_video_formats failed")
		return
	}

	for _, f := range formats {
		f.VideoID = videoID
		if err := m.Repo.AddVideoFormat(ctx, f); err != nil {
			logging.L().Error().Err(err).Str("video_id", videoID).Str("format_id", f.FormatID).Msg("add_video_format failed")
		}
	}
}
