package youtubeapi

import (
	"context"
	"fmt"
	"time"

	yt "google.golang.org/api/youtube/v3"

	"ytwatch/internal/domain/consts"
	"ytwatch/internal/models"
)

// ChannelInfo batches channel ids into groups of at most
// consts.DataAPIBatchSize and returns everything the Data API knows
// about each one, keyed by channel id (spec §4.2 channel_info).
func ChannelInfo(ctx context.Context, svc *yt.Service, channelIDs []string) (map[string]models.ChannelAPIInfo, error) {
	out := make(map[string]models.ChannelAPIInfo, len(channelIDs))

	for _, batch := range chunk(channelIDs, consts.DataAPIBatchSize) {
		resp, err := svc.Channels.List([]string{"snippet", "statistics", "status", "topicDetails"}).
			Id(batch...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list channels: %w", err)
		}

		for _, item := range resp.Items {
			out[item.Id] = channelAPIInfoFromItem(item)
		}
	}
	return out, nil
}

func channelAPIInfoFromItem(item *yt.Channel) models.ChannelAPIInfo {
	info := models.ChannelAPIInfo{ID: item.Id}

	if s := item.Snippet; s != nil {
		info.Title = s.Title
		info.Description = s.Description
		info.CustomURL = s.CustomUrl
		info.Country = s.Country
		if s.PublishedAt != "" {
			if t, err := time.Parse(time.RFC3339, s.PublishedAt); err == nil {
				info.PublishedAt = t
			}
		}
	}
	if st := item.Statistics; st != nil {
		info.ViewCount = int64(st.ViewCount)
		info.SubscriberCount = int64(st.SubscriberCount)
		info.HiddenSubscriberCount = st.HiddenSubscriberCount
		info.VideoCount = int64(st.VideoCount)
	}
	if status := item.Status; status != nil {
		info.PrivacyStatus = status.PrivacyStatus
		info.IsLinked = status.IsLinked
		info.LongUploadsStatus = status.LongUploadsStatus
		info.MadeForKids = status.MadeForKids
		info.SelfDeclaredMadeForKids = status.SelfDeclaredMadeForKids
	}
	if td := item.TopicDetails; td != nil {
		info.TopicIDs = append([]string{}, td.TopicIds...)
		info.TopicCategories = append([]string{}, td.TopicCategories...)
	}
	return info
}

// chunk splits ids into groups of at most size, preserving order.
func chunk(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	var out [][]string
	for len(ids) > 0 {
		n := size
		if n > len(ids) {
			n = len(ids)
		}
		out = append(out, ids[:n])
		ids = ids[n:]
	}
	return out
}
