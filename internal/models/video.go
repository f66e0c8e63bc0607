package models

import "time"

// Video is the persisted video record (spec §3).
type Video struct {
	ID                   int64
	VideoID              string
	ChannelID            string
	URL                  string
	Title                string
	Description          string
	Duration             int64
	ViewCount            int64
	LikeCount            int64
	CommentCount         int64
	UploadDate           time.Time
	HasUploadDate        bool
	DefaultAudioLanguage string
	Availability         string
	LiveStatus           string
	ChannelIsVerified    bool
	Tags                 []string
	Thumbnails           []Thumbnail
	LastUpdate           time.Time
	CreatedAt            time.Time
}

// IsInvalid reports whether the video is tombstoned (spec §3, §7).
func (v *Video) IsInvalid() bool {
	return v.LikeCount == -1
}

// VideoHistory is an append-only snapshot of a video's counters
// (spec §3).
type VideoHistory struct {
	ID           int64
	VideoID      string
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
	RecordedAt   time.Time
}

// VideoAPIInfo is the normalized result of AA.video_info (spec §4.2).
type VideoAPIInfo struct {
	ID                   string
	URL                  string
	Title                string
	Description          string
	Tags                 []string
	Duration             int64 // seconds, parsed from ISO-8601
	Thumbnails           []Thumbnail
	ViewCount            int64
	LikeCount            int64
	CommentCount         int64
	Timestamp            int64
	Availability         string
	LiveStatus           string
	ChannelIsVerified    bool
	DefaultAudioLanguage string
}

// Thumbnail is a shared image reference, owned by exactly one of a
// video or a channel (spec §3).
type Thumbnail struct {
	ID            string
	VideoID       string
	ChannelID     string
	URL           string
	Width         int
	Height        int
	ThumbnailID   string
	ThumbnailPath string
}

// Format is one enumerated download format for a video (spec §3).
type Format struct {
	ID              int64
	VideoID         string
	FormatID        string
	Ext             string
	Resolution      string
	FPS             float64
	AudioChannels   int
	Filesize        int64
	TBR             float64
	Protocol        string
	VCodec          string
	ACodec          string
	ASR             int
	Width           int
	Height          int
	DynamicRange    string
	Language        string
	Quality         int
	HasDRM          bool
	FilesizeApprox  int64
	FilePath        string
	IsDownloaded    bool
}

// NewVideoNotification is the payload enqueued for the news/shorts
// publishers (spec §4.5, §4.6).
type NewVideoNotification struct {
	ChannelName           string
	ChannelURL            string
	VideoTitle            string
	VideoURL              string
	IsShort               bool
	VideoFileDownloadPath string
}
