package monitor

import (
	"context"
	"time"

	"ytwatch/internal/domain/consts"
	"ytwatch/internal/logging"
	"ytwatch/internal/models"
)

// runShortsDownloaderLoop is worker 4 (spec §4.5): drains the
// internal download queue, downloads one video at a time, then
// enqueues the resulting file's path into the shorts notification
// queue. Only launched when shorts publishing is enabled.
func (m *Monitor) runShortsDownloaderLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-m.DownloadRequests:
			m.downloadAndEnqueueShort(ctx, req)

			select {
			case <-ctx.Done():
				return
			case <-time.After(consts.InterChannelPause):
			}
		}
	}
}

func (m *Monitor) downloadAndEnqueueShort(ctx context.Context, req downloadRequest) {
	path, err := m.Extractor.DownloadVideo(ctx, req.VideoURL, m.ShortsDownloadPath)
	if err != nil {
		logging.L().Error().Err(err).Str("video_url", req.VideoURL).Msg("short download failed")
		return
	}

	m.Shorts <- models.NewVideoNotification{
		ChannelName:           req.ChannelName,
		ChannelURL:            req.ChannelURL,
		VideoTitle:            req.VideoTitle,
		VideoURL:              req.VideoURL,
		IsShort:               true,
		VideoFileDownloadPath: path,
	}
}
