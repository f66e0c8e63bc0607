// Package consts holds database table/column names and shared constants.
package consts

// Database table names.
const (
	DBChannels       = "channels"
	DBChannelHistory = "channel_history"
	DBVideos         = "videos"
	DBVideoHistory   = "video_history"
	DBTags           = "tags"
	DBVideoTags      = "video_tags"
	DBThumbnails     = "thumbnails"
	DBVideoFormats   = "video_formats"
)

// Channel columns.
const (
	QChanID           = "id"
	QChanChannelID    = "channel_id"
	QChanTitle        = "title"
	QChanURL          = "channel_url"
	QChanDescription  = "description"
	QChanCustomURL    = "custom_url"
	QChanFollowers    = "follower_count"
	QChanViews        = "view_count"
	QChanVideoCount   = "video_count"
	QChanPublishedAt  = "published_at"
	QChanCountry      = "country"
	QChanListName     = "list_name"
	QChanLastUpdate   = "last_update"
	QChanCreatedAt    = "created_at"
)

// ChannelHistory columns.
const (
	QChanHistID         = "id"
	QChanHistChannelID  = "channel_id"
	QChanHistFollowers  = "follower_count"
	QChanHistViews      = "view_count"
	QChanHistVideoCount = "video_count"
	QChanHistRecordedAt = "recorded_at"
)

// Video columns.
const (
	QVidID          = "id"
	QVidVideoID     = "video_id"
	QVidChannelID   = "channel_id"
	QVidURL         = "url"
	QVidTitle       = "title"
	QVidDescription = "description"
	QVidDuration    = "duration"
	QVidViews       = "view_count"
	QVidLikes       = "like_count"
	QVidComments    = "comment_count"
	QVidUploadDate  = "upload_date"
	QVidAudioLang   = "default_audio_language"
	QVidLastUpdate  = "last_update"
	QVidCreatedAt   = "created_at"
)

// VideoHistory columns.
const (
	QVidHistID         = "id"
	QVidHistVideoID    = "video_id"
	QVidHistViews      = "view_count"
	QVidHistLikes      = "like_count"
	QVidHistComments   = "comment_count"
	QVidHistRecordedAt = "recorded_at"
)

// Tag / VideoTag columns.
const (
	QTagID   = "id"
	QTagName = "name"

	QVTVideoID = "video_id"
	QVTTagID   = "tag_id"
)

// Thumbnail columns.
const (
	QThumbID        = "id"
	QThumbVideoID   = "video_id"
	QThumbChannelID = "channel_id"
	QThumbURL       = "url"
	QThumbWidth     = "width"
	QThumbHeight    = "height"
	QThumbThumbID   = "thumbnail_id"
	QThumbPath      = "thumbnail_path"
)

// Format columns.
const (
	QFmtID              = "id"
	QFmtVideoID         = "video_id"
	QFmtFormatID        = "format_id"
	QFmtExt             = "ext"
	QFmtResolution      = "resolution"
	QFmtFPS             = "fps"
	QFmtAudioChannels   = "audio_channels"
	QFmtFilesize        = "filesize"
	QFmtTBR             = "tbr"
	QFmtProtocol        = "protocol"
	QFmtVCodec          = "vcodec"
	QFmtACodec          = "acodec"
	QFmtASR             = "asr"
	QFmtWidth           = "width"
	QFmtHeight          = "height"
	QFmtDynamicRange    = "dynamic_range"
	QFmtLanguage        = "language"
	QFmtQuality         = "quality"
	QFmtHasDRM          = "has_drm"
	QFmtFilesizeApprox  = "filesize_approx"
	QFmtFilePath        = "file_path"
	QFmtIsDownloaded    = "is_downloaded"
)

// InvalidLikeCount is the tombstone sentinel marking a video as
// persistently un-enrichable (spec §3, §7).
const InvalidLikeCount = -1
