// Package fusion reconciles records drawn from the extractor (rich,
// unofficial) with records drawn from the Data API (authoritative,
// quota-limited) — spec §4.4. Every exported function here is pure:
// no I/O, no logging, no config access.
package fusion

import (
	"time"

	"ytwatch/internal/models"
)

// CombineChannel merges an extractor channel descriptor with the
// Data API's channel info into one authoritative Channel record
// (spec §4.4 combine_channel).
//
//	channel_id                                       <- extractor, falling back to API
//	title/description                                <- extractor, falling back to API
//	follower_count                                   <- API only
//	view_count/video_count/published_at/country/custom_url <- API only
//	channel_url/tags/thumbnails                       <- extractor
//
// The extractor's ChannelDescriptor carries no follower count, so
// follower_count stays 0 when api is nil.
func CombineChannel(extractor models.ChannelDescriptor, api *models.ChannelAPIInfo) models.Channel {
	c := models.Channel{
		ChannelURL: extractor.ChannelURL,
		ChannelID:  extractor.ChannelID,
		Title:      extractor.Title,
		Description: extractor.Description,
		Tags:       extractor.Tags,
		Thumbnails: extractor.Thumbnails,
	}

	if api != nil {
		if c.ChannelID == "" {
			c.ChannelID = api.ID
		}
		if c.Title == "" {
			c.Title = api.Title
		}
		if c.Description == "" {
			c.Description = api.Description
		}
		c.FollowerCount = api.SubscriberCount

		c.ViewCount = api.ViewCount
		c.VideoCount = api.VideoCount
		c.PublishedAt = api.PublishedAt
		c.Country = api.Country
		c.CustomURL = api.CustomURL
	}

	return c
}

// CombineVideo merges a flat extractor entry with its Data API
// counterpart, keyed by the external video ID (spec §4.4
// combine_video). If apiByID has no entry for stub.ID, the extractor
// record is returned as-is.
func CombineVideo(stub models.VideoStub, apiByID map[string]models.VideoAPIInfo) models.Video {
	v := models.Video{
		VideoID:  stub.ID,
		URL:      stub.URL,
		Title:    stub.Title,
		Duration: stub.Duration,
	}
	if stub.Timestamp > 0 {
		v.UploadDate = time.Unix(stub.Timestamp, 0).UTC()
		v.HasUploadDate = true
	}
	v.Tags = append([]string{}, stub.Tags...)
	v.Thumbnails = append([]models.Thumbnail{}, stub.Thumbnails...)
	v.ViewCount = stub.ViewCount
	v.Availability = stub.Availability
	v.LiveStatus = stub.LiveStatus

	api, ok := apiByID[stub.ID]
	if !ok {
		return v
	}

	if v.URL == "" {
		v.URL = api.URL
	}
	if v.Title == "" {
		v.Title = api.Title
	}
	if v.Duration == 0 {
		v.Duration = api.Duration
	}
	if !v.HasUploadDate && api.Timestamp > 0 {
		v.UploadDate = time.Unix(api.Timestamp, 0).UTC()
		v.HasUploadDate = true
	}

	v.Description = api.Description
	v.ViewCount = api.ViewCount
	v.LikeCount = api.LikeCount
	v.CommentCount = api.CommentCount
	v.Availability = api.Availability
	v.LiveStatus = api.LiveStatus
	v.ChannelIsVerified = api.ChannelIsVerified
	v.DefaultAudioLanguage = api.DefaultAudioLanguage

	v.Tags = unionTagNames(v.Tags, api.Tags)
	v.Thumbnails = dedupeThumbnailsByURL(append(v.Thumbnails, api.Thumbnails...))

	return v
}

// unionTagNames returns the deduplicated, order-preserving union of
// two tag-name slices.
func unionTagNames(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, t := range a {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, t := range b {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// dedupeThumbnailsByURL keeps the first thumbnail seen for each URL.
func dedupeThumbnailsByURL(thumbs []models.Thumbnail) []models.Thumbnail {
	seen := make(map[string]struct{}, len(thumbs))
	out := make([]models.Thumbnail, 0, len(thumbs))
	for _, t := range thumbs {
		if _, ok := seen[t.URL]; ok {
			continue
		}
		seen[t.URL] = struct{}{}
		out = append(out, t)
	}
	return out
}

// PartitionQuerier is the narrow Repository capability
// partition_new_vs_known needs (spec §4.4): given the channel's
// already-known video IDs, split a candidate ID list into new and
// known buckets.
type PartitionQuerier interface {
	NewAndExistingVideoIDs(ids []string, channelID string) (newIDs, existingIDs []string, err error)
}

// PartitionNewVsKnown splits ids into (new, known) against the
// Repository's partition query, preserving input order within each
// bucket (spec §4.4, §8).
func PartitionNewVsKnown(q PartitionQuerier, ids []string, channelID string) (newIDs, knownIDs []string, err error) {
	return q.NewAndExistingVideoIDs(ids, channelID)
}
