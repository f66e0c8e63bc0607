package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytwatch/internal/models"
)

func TestEnqueueNotification_NonShortGoesToNews(t *testing.T) {
	m := &Monitor{
		News:             make(chan models.NewVideoNotification, 1),
		DownloadRequests: make(chan downloadRequest, 1),
	}
	channel := models.Channel{Title: "Demo", ChannelURL: "https://www.youtube.com/@demo"}
	video := models.Video{Title: "T1", URL: "https://www.youtube.com/watch?v=abc"}

	m.enqueueNotification(channel, video)

	require.Len(t, m.News, 1)
	assert.Empty(t, m.DownloadRequests)
}

func TestEnqueueNotification_ShortDroppedWhenPublishDisabled(t *testing.T) {
	m := &Monitor{
		ShortsPublishEnabled: false,
		News:                 make(chan models.NewVideoNotification, 1),
		DownloadRequests:     make(chan downloadRequest, 1),
	}
	channel := models.Channel{Title: "Demo"}
	video := models.Video{Title: "T1", URL: "https://www.youtube.com/shorts/abc"}

	m.enqueueNotification(channel, video)

	assert.Empty(t, m.News)
	assert.Empty(t, m.DownloadRequests)
}

func TestEnqueueNotification_ShortGoesToDownloadQueueWhenEnabled(t *testing.T) {
	m := &Monitor{
		ShortsPublishEnabled: true,
		News:                 make(chan models.NewVideoNotification, 1),
		DownloadRequests:     make(chan downloadRequest, 1),
	}
	channel := models.Channel{Title: "Demo", ChannelURL: "https://www.youtube.com/@demo"}
	video := models.Video{Title: "T1", URL: "https://www.youtube.com/shorts/abc"}

	m.enqueueNotification(channel, video)

	assert.Empty(t, m.News)
	require.Len(t, m.DownloadRequests, 1)
	req := <-m.DownloadRequests
	assert.Equal(t, "https://www.youtube.com/shorts/abc", req.VideoURL)
}
