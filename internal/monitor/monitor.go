// Package monitor is the Monitor Orchestrator (M): the supervised set
// of worker loops that walk the channel list, persist what changes,
// and feed the notifier's queues (spec §4.5). The Python original
// forks one OS process per worker sharing a multiprocessing.Queue;
// here each worker is a goroutine sharing a buffered Go channel,
// preserving the "isolated loop, shared only via the store and two
// bounded queues" property without literal process forking.
package monitor

import (
	"context"
	"sync"
	"time"

	yt "google.golang.org/api/youtube/v3"

	"ytwatch/internal/domain/consts"
	"ytwatch/internal/extractor"
	"ytwatch/internal/models"
	"ytwatch/internal/repo"
	"ytwatch/internal/youtubeapi"
)

// Repository is the narrow slice of *repo.Repo the orchestrator needs,
// named here so tests can substitute a fake.
type Repository interface {
	UpsertChannel(ctx context.Context, c models.Channel) error
	AddChannelHistory(ctx context.Context, h models.ChannelHistory) error
	ListChannels(ctx context.Context) ([]models.Channel, error)
	AddVideo(ctx context.Context, channelID string, v models.Video) (int64, error)
	UpdateVideo(ctx context.Context, v models.Video) error
	AddVideoHistory(ctx context.Context, h models.VideoHistory) error
	GetVideoIDsWithoutFormats(ctx context.Context, limit int) ([]string, error)
	GetVideosWithoutUploadDate(ctx context.Context, limit int) ([]string, error)
	NewAndExistingVideoIDs(ids []string, channelID string) ([]string, []string, error)
	AddVideoFormat(ctx context.Context, f models.Format) error
	SetVideoAsInvalid(ctx context.Context, videoID string) error
	ResetAllInvalidVideos(ctx context.Context) (int64, error)
}

var _ Repository = (*repo.Repo)(nil)

// Monitor holds everything the worker loops need: the channel list to
// sweep, the store, the two adapters, and the queues the notifier
// drains (spec §4.5, §4.6).
type Monitor struct {
	Repo      Repository
	Extractor *extractor.Extractor
	Auth      *youtubeapi.Auth

	Channels []string
	ListName string

	ShortsPublishEnabled bool
	ShortsDownloadPath   string

	News             chan models.NewVideoNotification
	Shorts           chan models.NewVideoNotification
	DownloadRequests chan downloadRequest
}

// downloadRequest is one item on the internal download queue: a
// short-form video waiting to be fetched before it can be published
// (spec §4.5 Shorts downloader).
type downloadRequest struct {
	VideoURL    string
	VideoTitle  string
	ChannelName string
	ChannelURL  string
}

// New builds a Monitor with buffered queues so a sweep rarely waits on
// the notifier; once a queue's buffer is full, enqueueing blocks until
// the consumer drains an item.
func New(r Repository, ex *extractor.Extractor, auth *youtubeapi.Auth, channels []string, listName string, shortsEnabled bool, shortsDownloadPath string) *Monitor {
	return &Monitor{
		Repo:                 r,
		Extractor:            ex,
		Auth:                 auth,
		Channels:             channels,
		ListName:             listName,
		ShortsPublishEnabled: shortsEnabled,
		ShortsDownloadPath:   shortsDownloadPath,
		News:                 make(chan models.NewVideoNotification, 256),
		Shorts:               make(chan models.NewVideoNotification, 64),
		DownloadRequests:     make(chan downloadRequest, 64),
	}
}

// WorkerSet names which loops Run starts, matching the feature flags
// spec §6 enumerates (monitor_new, monitor_history, monitor_video_formats).
type WorkerSet struct {
	New     bool
	History bool
	Formats bool
}

// Run launches the enabled worker loops and blocks until ctx is
// cancelled, then waits for every loop to return (spec §4.5
// Cancellation: "an outer supervisor joins all workers on shutdown").
func (m *Monitor) Run(ctx context.Context, workers WorkerSet) {
	var wg sync.WaitGroup

	if workers.New {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.runNewVideoLoop(ctx)
		}()
	}
	if workers.History {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.runHistoryLoop(ctx)
		}()
	}
	if workers.Formats {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.runFormatsLoop(ctx)
		}()
	}
	if m.ShortsPublishEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.runShortsDownloaderLoop(ctx)
		}()
	}

	wg.Wait()
}

// service resolves a ready Data API client, or nil if the adapter
// isn't authenticated yet — callers fall back to extractor-only data
// rather than blocking a sweep on interactive auth.
func (m *Monitor) service(ctx context.Context) *yt.Service {
	if m.Auth == nil {
		return nil
	}
	svc, err := m.Auth.Service(ctx, false)
	if err != nil {
		return nil
	}
	return svc
}

// pace sleeps consts.InterChannelPause between channels within a
// sweep, returning false if ctx was cancelled first (spec §4.5
// Per-channel pacing).
func pace(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(consts.InterChannelPause):
		return true
	}
}
