package monitor

import (
	"context"

	"ytwatch/internal/domain/consts"
	"ytwatch/internal/fusion"
	"ytwatch/internal/logging"
	"ytwatch/internal/models"
	"ytwatch/internal/youtubeapi"
)

// runHistoryLoop is worker 2 (spec §4.5): refresh channel + video
// stats and append history rows for already-known videos, with a
// 10 s cold-start delay before the first sweep.
func (m *Monitor) runHistoryLoop(ctx context.Context) {
	runEvery(ctx, consts.HistoryLoopInterval, consts.HistoryColdStart, m.sweepHistory)
}

func (m *Monitor) sweepHistory(ctx context.Context) {
	for i, channelURL := range m.Channels {
		if ctx.Err() != nil {
			return
		}

		m.refreshChannelHistory(ctx, channelURL)

		if i < len(m.Channels)-1 {
			if !pace(ctx) {
				return
			}
		}
	}
}

func (m *Monitor) refreshChannelHistory(ctx context.Context, channelURL string) {
	desc, err := m.Extractor.ChannelDescriptor(ctx, channelURL)
	if err != nil {
		logging.L().Warn().Err(err).Str("channel_url", channelURL).Msg("failed to list channel for history")
		return
	}
	if desc.ChannelID == "" {
		return
	}

	var apiInfo *models.ChannelAPIInfo
	if svc := m.service(ctx); svc != nil {
		if infos, err := youtubeapi.ChannelInfo(ctx, svc, []string{desc.ChannelID}); err == nil {
			if info, ok := infos[desc.ChannelID]; ok {
				apiInfo = &info
			}
		}
	}

	channel := fusion.CombineChannel(desc, apiInfo)
	channel.ListName = m.ListName
	if err := m.Repo.UpsertChannel(ctx, channel); err != nil {
		logging.L().Error().Err(err).Str("channel_id", channel.ChannelID).Msg("upsert_channel failed during history sweep")
		return
	}
	if err := m.Repo.AddChannelHistory(ctx, models.ChannelHistory{
		ChannelID:     channel.ChannelID,
		FollowerCount: channel.FollowerCount,
		ViewCount:     channel.ViewCount,
		VideoCount:    channel.VideoCount,
	}); err != nil {
		logging.L().Error().Err(err).Str("channel_id", channel.ChannelID).Msg("add_channel_history failed")
	}

	ids := make([]string, 0, len(desc.Entries))
	for _, e := range desc.Entries {
		ids = append(ids, e.ID)
	}
	_, knownIDs, err := fusion.PartitionNewVsKnown(m.Repo, ids, channel.ChannelID)
	if err != nil || len(knownIDs) == 0 {
		return
	}

	var apiVideos map[string]models.VideoAPIInfo
	if svc := m.service(ctx); svc != nil {
		if infos, err := youtubeapi.VideoInfo(ctx, svc, knownIDs); err == nil {
			apiVideos = infos
		}
	}

	knownSet := make(map[string]struct{}, len(knownIDs))
	for _, id := range knownIDs {
		knownSet[id] = struct{}{}
	}

	for _, stub := range desc.Entries {
		if _, ok := knownSet[stub.ID]; !ok {
			continue
		}
		video := fusion.CombineVideo(stub, apiVideos)
		if err := m.Repo.UpdateVideo(ctx, video); err != nil {
			logging.L().Warn().Err(err).Str("video_id", video.VideoID).Msg("update_video failed during history sweep")
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
	}
}
