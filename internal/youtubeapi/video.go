package youtubeapi

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	yt "google.golang.org/api/youtube/v3"

	"ytwatch/internal/domain/consts"
	"ytwatch/internal/models"
)

// VideoInfo batches video ids into groups of at most
// consts.DataAPIBatchSize and returns everything the Data API knows
// about each one, keyed by video id (spec §4.2 video_info).
func VideoInfo(ctx context.Context, svc *yt.Service, videoIDs []string) (map[string]models.VideoAPIInfo, error) {
	out := make(map[string]models.VideoAPIInfo, len(videoIDs))

	for _, batch := range chunk(videoIDs, consts.DataAPIBatchSize) {
		resp, err := svc.Videos.List([]string{"snippet", "statistics", "contentDetails", "liveStreamingDetails"}).
			Id(batch...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list videos: %w", err)
		}

		for _, item := range resp.Items {
			out[item.Id] = videoAPIInfoFromItem(item)
		}
	}
	return out, nil
}

func videoAPIInfoFromItem(item *yt.Video) models.VideoAPIInfo {
	info := models.VideoAPIInfo{
		ID:  item.Id,
		URL: "https://www.youtube.com/watch?v=" + item.Id,
	}

	if s := item.Snippet; s != nil {
		info.Title = s.Title
		info.Description = s.Description
		info.Tags = append([]string{}, s.Tags...)
		info.LiveStatus = s.LiveBroadcastContent
		info.DefaultAudioLanguage = s.DefaultAudioLanguage
		if s.PublishedAt != "" {
			if t, err := time.Parse(time.RFC3339, s.PublishedAt); err == nil {
				info.Timestamp = t.Unix()
			}
		}
		if thumbs := s.Thumbnails; thumbs != nil {
			for _, th := range []*yt.Thumbnail{thumbs.Default, thumbs.Medium, thumbs.High, thumbs.Standard, thumbs.Maxres} {
				if th == nil || th.Url == "" {
					continue
				}
				info.Thumbnails = append(info.Thumbnails, models.Thumbnail{
					URL:    th.Url,
					Width:  int(th.Width),
					Height: int(th.Height),
				})
			}
		}
	}
	if st := item.Statistics; st != nil {
		info.ViewCount = int64(st.ViewCount)
		info.LikeCount = int64(st.LikeCount)
		info.CommentCount = int64(st.CommentCount)
	}
	if cd := item.ContentDetails; cd != nil {
		info.Duration = parseISO8601Duration(cd.Duration)
	}
	return info
}

var iso8601DurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISO8601Duration converts the Data API's ISO-8601 duration
// strings ("PT1H2M3S") into whole seconds. Unparseable input yields 0.
func parseISO8601Duration(s string) int64 {
	m := iso8601DurationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.ParseInt(m[1], 10, 64)
	minutes, _ := strconv.ParseInt(m[2], 10, 64)
	seconds, _ := strconv.ParseInt(m[3], 10, 64)
	return hours*3600 + minutes*60 + seconds
}
