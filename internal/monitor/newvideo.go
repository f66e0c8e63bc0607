package monitor

import (
	"context"
	"strings"

	"ytwatch/internal/domain/consts"
	"ytwatch/internal/fusion"
	"ytwatch/internal/logging"
	"ytwatch/internal/models"
	"ytwatch/internal/youtubeapi"
)

// runNewVideoLoop is worker 1 (spec §4.5): for each channel URL, call
// EA -> AA -> F, partition new/known, persist new videos, enqueue
// notifications.
func (m *Monitor) runNewVideoLoop(ctx context.Context) {
	runEvery(ctx, consts.NewVideoLoopInterval, 0, m.sweepNewVideos)
}

func (m *Monitor) sweepNewVideos(ctx context.Context) {
	for i, channelURL := range m.Channels {
		if ctx.Err() != nil {
			return
		}

		m.processChannelNewVideos(ctx, channelURL)

		if i < len(m.Channels)-1 {
			if !pace(ctx) {
				return
			}
		}
	}
}

func (m *Monitor) processChannelNewVideos(ctx context.Context, channelURL string) {
	desc, err := m.Extractor.ChannelDescriptor(ctx, channelURL)
	if err != nil {
		logging.L().Warn().Err(err).Str("channel_url", channelURL).Msg("failed to list channel")
		return
	}
	if desc.ChannelID == "" {
		logging.L().Warn().Str("channel_url", channelURL).Msg("extractor returned no channel id")
		return
	}

	var apiInfo *models.ChannelAPIInfo
	if svc := m.service(ctx); svc != nil {
		if infos, err := youtubeapi.ChannelInfo(ctx, svc, []string{desc.ChannelID}); err != nil {
			logging.L().Warn().Err(err).Str("channel_id", desc.ChannelID).Msg("channel_info failed")
		} else if info, ok := infos[desc.ChannelID]; ok {
			apiInfo = &info
		}
	}

	channel := fusion.CombineChannel(desc, apiInfo)
	channel.ListName = m.ListName
	if err := m.Repo.UpsertChannel(ctx, channel); err != nil {
		logging.L().Error().Err(err).Str("channel_id", channel.ChannelID).Msg("upsert_channel failed")
		return
	}

	entries := desc.Entries
	if len(entries) > consts.NewVsKnownDefaultCap {
		entries = entries[:consts.NewVsKnownDefaultCap]
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	newIDs, _, err := fusion.PartitionNewVsKnown(m.Repo, ids, channel.ChannelID)
	if err != nil {
		logging.L().Error().Err(err).Str("channel_id", channel.ChannelID).Msg("partition_new_vs_known failed")
		return
	}
	if len(newIDs) == 0 {
		return
	}

	newSet := make(map[string]struct{}, len(newIDs))
	for _, id := range newIDs {
		newSet[id] = struct{}{}
	}

	var apiVideos map[string]models.VideoAPIInfo
	if svc := m.service(ctx); svc != nil {
		if infos, err := youtubeapi.VideoInfo(ctx, svc, newIDs); err != nil {
			logging.L().Warn().Err(err).Str("channel_id", channel.ChannelID).Msg("video_info failed")
		} else {
			apiVideos = infos
		}
	}

	for _, stub := range entries {
		if _, ok := newSet[stub.ID]; !ok {
			continue
		}
		video := fusion.CombineVideo(stub, apiVideos)
		if _, err := m.Repo.AddVideo(ctx, channel.ChannelID, video); err != nil {
			logging.L().Error().Err(err).Str("video_id", video.VideoID).Msg("add_video failed")
			continue
		}
		if err := m.Repo.AddVideoHistory(ctx, models.VideoHistory{
			VideoID:      video.VideoID,
			ViewCount:    video.ViewCount,
			LikeCount:    video.LikeCount,
			CommentCount: video.CommentCount,
		}); err != nil {
			logging.L().Error().Err(err).Str("video_id", video.VideoID).Msg("add_video_history failed")
		}
		m.enqueueNotification(channel, video)
	}
}

// enqueueNotification classifies the video by URL and routes it to
// the news queue or the download queue (spec §4.5 New-video
// notification policy).
func (m *Monitor) enqueueNotification(channel models.Channel, video models.Video) {
	isShort := strings.Contains(video.URL, "shorts")
	notification := models.NewVideoNotification{
		ChannelName: channel.Title,
		ChannelURL:  channel.ChannelURL,
		VideoTitle:  video.Title,
		VideoURL:    video.URL,
		IsShort:     isShort,
	}

	if isShort {
		if !m.ShortsPublishEnabled {
			return
		}
		m.DownloadRequests <- downloadRequest{
			VideoURL:    video.URL,
			VideoTitle:  video.Title,
			ChannelName: channel.Title,
			ChannelURL:  channel.ChannelURL,
		}
		return
	}

	m.News <- notification
}
