package notifier

import (
	"context"
	"time"

	"ytwatch/internal/domain/consts"
	"ytwatch/internal/logging"
	"ytwatch/internal/models"
)

// pollTimeout is the short non-blocking wait each publisher uses to
// check its queue before falling back to the full dispatch delay
// (spec §4.6 "polls ... with a short non-blocking timeout").
const pollTimeout = 1 * time.Second

// RunNewsPublisher drains news, rendering and sending the new-video
// template for each item, spaced NewsDispatchDelay apart (spec §4.6
// News publisher).
func RunNewsPublisher(ctx context.Context, client *Client, groupID int64, templatePath string, news <-chan models.NewVideoNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-news:
			sendNews(client, groupID, templatePath, n)
		case <-time.After(pollTimeout):
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(consts.NewsDispatchDelay):
		}
	}
}

func sendNews(client *Client, groupID int64, templatePath string, n models.NewVideoNotification) {
	text, err := Render(templatePath, TemplateData{
		VideoTitle:     n.VideoTitle,
		VideoURL:       n.VideoURL,
		ChannelName:    n.ChannelName,
		ChannelURL:     n.ChannelURL,
		ChannelHashtag: Hashtag(n.ChannelName),
	})
	if err != nil {
		logging.L().Error().Err(err).Str("video_url", n.VideoURL).Msg("failed to render news template")
		return
	}
	if _, err := client.SendMessage(groupID, text, 0); err != nil {
		logging.L().Error().Err(err).Str("video_url", n.VideoURL).Msg("failed to send news message")
	}
}

// RunShortsPublisher drains shorts, uploading the downloaded file
// with a rendered caption, spaced NewsDispatchDelay apart (spec §4.6
// Shorts publisher). Only launched when shorts publishing is enabled.
func RunShortsPublisher(ctx context.Context, client *Client, groupID int64, templatePath string, shorts <-chan models.NewVideoNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-shorts:
			sendShort(client, groupID, templatePath, n)
		case <-time.After(pollTimeout):
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(consts.NewsDispatchDelay):
		}
	}
}

func sendShort(client *Client, groupID int64, templatePath string, n models.NewVideoNotification) {
	caption, err := Render(templatePath, TemplateData{
		VideoTitle:     n.VideoTitle,
		VideoURL:       n.VideoURL,
		ChannelName:    n.ChannelName,
		ChannelURL:     n.ChannelURL,
		ChannelHashtag: Hashtag(n.ChannelName),
	})
	if err != nil {
		logging.L().Error().Err(err).Str("video_url", n.VideoURL).Msg("failed to render shorts template")
		return
	}
	if n.VideoFileDownloadPath == "" {
		logging.L().Error().Str("video_url", n.VideoURL).Msg("short has no downloaded file, dropping")
		return
	}
	if err := client.SendVideo(groupID, n.VideoFileDownloadPath, caption); err != nil {
		logging.L().Error().Err(err).Str("video_url", n.VideoURL).Msg("failed to send short upload")
	}
}
