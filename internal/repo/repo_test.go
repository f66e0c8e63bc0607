package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ytwatch/internal/database"
	"ytwatch/internal/models"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func seedChannel(t *testing.T, r *Repo, channelID string) {
	t.Helper()
	err := r.UpsertChannel(context.Background(), models.Channel{
		ChannelID:  channelID,
		Title:      "Demo Channel",
		ChannelURL: "https://www.youtube.com/channel/" + channelID,
	})
	require.NoError(t, err)
}

func TestUpsertChannel_InsertThenUpdate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedChannel(t, r, "UC1")

	err := r.UpsertChannel(ctx, models.Channel{
		ChannelID:     "UC1",
		Title:         "Renamed",
		ChannelURL:    "https://www.youtube.com/channel/UC1",
		FollowerCount: 50,
	})
	require.NoError(t, err)

	got, err := r.GetChannelByID(ctx, "UC1")
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Title)
	require.Equal(t, int64(50), got.FollowerCount)
}

func TestGetChannelByID_NotFound(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.GetChannelByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrChannelNotFound)
}

func TestAddVideo_PersistsTagsAndThumbnails(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedChannel(t, r, "UC1")

	v := models.Video{
		VideoID:       "v1",
		Title:         "Title",
		ViewCount:     10,
		HasUploadDate: true,
		UploadDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Tags:          []string{"a", "b"},
		Thumbnails:    []models.Thumbnail{{URL: "https://img/1.jpg", Width: 120, Height: 90}},
	}

	_, err := r.AddVideo(ctx, "UC1", v)
	require.NoError(t, err)

	newIDs, knownIDs, err := r.NewAndExistingVideoIDs([]string{"v1", "v2"}, "UC1")
	require.NoError(t, err)
	require.Equal(t, []string{"v2"}, newIDs)
	require.Equal(t, []string{"v1"}, knownIDs)

	var tagLinks int
	require.NoError(t, r.db.QueryRow(
		`SELECT COUNT(*) FROM video_tags JOIN videos ON videos.id = video_tags.video_id WHERE videos.video_id = ?`, "v1",
	).Scan(&tagLinks))
	require.Equal(t, 2, tagLinks)

	var thumbURL string
	require.NoError(t, r.db.QueryRow(
		`SELECT thumbnails.url FROM thumbnails JOIN videos ON videos.id = thumbnails.video_id WHERE videos.video_id = ?`, "v1",
	).Scan(&thumbURL))
	require.Equal(t, "https://img/1.jpg", thumbURL)
}

func TestAddVideo_Idempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedChannel(t, r, "UC1")

	v := models.Video{VideoID: "v1", Title: "Title", ViewCount: 10}
	_, err := r.AddVideo(ctx, "UC1", v)
	require.NoError(t, err)

	v.ViewCount = 20
	_, err = r.AddVideo(ctx, "UC1", v)
	require.NoError(t, err)

	newIDs, knownIDs, err := r.NewAndExistingVideoIDs([]string{"v1"}, "UC1")
	require.NoError(t, err)
	require.Empty(t, newIDs)
	require.Equal(t, []string{"v1"}, knownIDs)
}

func TestSetVideoAsInvalid_AndReset(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedChannel(t, r, "UC1")

	_, err := r.AddVideo(ctx, "UC1", models.Video{VideoID: "v1", Title: "T"})
	require.NoError(t, err)

	require.NoError(t, r.SetVideoAsInvalid(ctx, "v1"))

	n, err := r.ResetAllInvalidVideos(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestGetVideoIDsWithoutFormats(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedChannel(t, r, "UC1")

	_, err := r.AddVideo(ctx, "UC1", models.Video{VideoID: "v1", Title: "T"})
	require.NoError(t, err)

	ids, err := r.GetVideoIDsWithoutFormats(ctx, 50)
	require.NoError(t, err)
	require.Equal(t, []string{"v1"}, ids)

	err = r.AddVideoFormat(ctx, models.Format{VideoID: "v1", FormatID: "137", Ext: "mp4"})
	require.NoError(t, err)

	ids, err = r.GetVideoIDsWithoutFormats(ctx, 50)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestAddThumbnail_RequiresExactlyOneOwner(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedChannel(t, r, "UC1")

	err := r.AddThumbnail(ctx, models.Thumbnail{URL: "https://img/orphan.jpg"})
	require.ErrorIs(t, err, ErrIntegrityViolation)

	err = r.AddThumbnail(ctx, models.Thumbnail{
		URL:       "https://img/both.jpg",
		VideoID:   "v1",
		ChannelID: "UC1",
	})
	require.ErrorIs(t, err, ErrIntegrityViolation)
}

func TestAddThumbnail_ChannelOwned(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedChannel(t, r, "UC1")

	err := r.AddThumbnail(ctx, models.Thumbnail{URL: "https://img/chan.jpg", ChannelID: "UC1"})
	require.NoError(t, err)
}

func TestBulkAddTags_DeduplicatesAcrossVideos(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedChannel(t, r, "UC1")

	_, err := r.AddVideo(ctx, "UC1", models.Video{VideoID: "v1", Title: "T"})
	require.NoError(t, err)
	_, err = r.AddVideo(ctx, "UC1", models.Video{VideoID: "v2", Title: "T2"})
	require.NoError(t, err)

	require.NoError(t, r.BulkAddTags(ctx, "v1", []string{"shared", "only-v1"}))
	require.NoError(t, r.BulkAddTags(ctx, "v2", []string{"shared"}))
}
