package extractor

import (
	"context"
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/lrstanley/go-ytdlp"

	"ytwatch/internal/logging"
	"ytwatch/internal/models"
)

// ChannelDescriptor lists a channel's videos without downloading any
// media (spec §4.1 channel_descriptor): --flat-playlist plus JSON
// output, one extracted-info entry per video.
func (e *Extractor) ChannelDescriptor(ctx context.Context, channelURL string) (models.ChannelDescriptor, error) {
	cmd := e.baseCommand().FlatPlaylist().SkipDownload()

	r, err := cmd.Run(ctx, channelURL)
	if err != nil {
		return models.ChannelDescriptor{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, channelURL, err)
	}

	infos, err := r.GetExtractedInfo()
	if err != nil {
		return models.ChannelDescriptor{}, fmt.Errorf("%w: %s: %v", ErrMalformed, channelURL, err)
	}
	if len(infos) == 0 {
		return models.ChannelDescriptor{}, fmt.Errorf("%w: %s", ErrNoData, channelURL)
	}

	root := infos[0]
	desc := models.ChannelDescriptor{
		ChannelURL: channelURL,
	}
	if root.ID != "" {
		desc.ChannelID = root.ID
	}
	if root.Title != nil {
		desc.Title = *root.Title
	}

	entries := root.Entries
	if len(entries) == 0 {
		entries = infos[1:]
	}
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		desc.Entries = append(desc.Entries, videoStubFromExtracted(entry))
	}
	return desc, nil
}

func videoStubFromExtracted(e *ytdlp.ExtractedInfo) models.VideoStub {
	stub := models.VideoStub{ID: e.ID}
	if e.Title != nil {
		stub.Title = *e.Title
	}
	if e.URL != nil {
		stub.URL = *e.URL
	} else if e.WebpageURL != nil {
		stub.URL = *e.WebpageURL
	}
	if e.Duration != nil {
		stub.Duration = int64(*e.Duration)
	}
	if e.ViewCount != nil {
		stub.ViewCount = int64(*e.ViewCount)
	}
	if e.Timestamp != nil {
		stub.Timestamp = int64(*e.Timestamp)
	} else if e.UploadDate != nil && *e.UploadDate != "" {
		// yt-dlp's flat-playlist entries often carry only a loosely
		// formatted upload_date (YYYYMMDD) and no unix timestamp; the
		// Data API fills this in precisely later via combine_video.
		if t, err := dateparse.ParseAny(*e.UploadDate); err == nil {
			stub.Timestamp = t.Unix()
		} else {
			logging.L().Debug().Str("upload_date", *e.UploadDate).Msg("failed to parse extractor upload date")
		}
	}
	if e.LiveStatus != nil {
		stub.LiveStatus = string(*e.LiveStatus)
	}
	if e.Availability != nil {
		stub.Availability = string(*e.Availability)
	}
	stub.Tags = append([]string{}, e.Tags...)
	for _, t := range e.Thumbnails {
		if t == nil {
			continue
		}
		th := models.Thumbnail{URL: t.URL}
		if t.Width != nil {
			th.Width = *t.Width
		}
		if t.Height != nil {
			th.Height = *t.Height
		}
		stub.Thumbnails = append(stub.Thumbnails, th)
	}
	return stub
}

// VideoFormats enumerates a video's downloadable formats without
// downloading any of them (spec §4.1 video_formats, §4.5 formats loop).
func (e *Extractor) VideoFormats(ctx context.Context, videoURL string) ([]models.Format, error) {
	cmd := e.baseCommand().SkipDownload()

	r, err := cmd.Run(ctx, videoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, videoURL, err)
	}

	infos, err := r.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, videoURL, err)
	}
	if len(infos) == 0 || infos[0] == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoData, videoURL)
	}

	var out []models.Format
	for _, f := range infos[0].Formats {
		if f == nil {
			continue
		}
		out = append(out, formatFromExtracted(videoURL, f))
	}
	return out, nil
}

func formatFromExtracted(videoID string, f *ytdlp.ExtractedFormat) models.Format {
	out := models.Format{VideoID: videoID}
	if f.FormatID != nil {
		out.FormatID = *f.FormatID
	}
	if f.Extension != nil {
		out.Ext = *f.Extension
	}
	if f.Resolution != nil {
		out.Resolution = *f.Resolution
	}
	if f.FPS != nil {
		out.FPS = *f.FPS
	}
	if f.FileSize != nil {
		out.Filesize = int64(*f.FileSize)
	}
	if f.TBR != nil {
		out.TBR = *f.TBR
	}
	if f.Protocol != nil {
		out.Protocol = *f.Protocol
	}
	if f.VCodec != nil {
		out.VCodec = *f.VCodec
	}
	if f.ACodec != nil {
		out.ACodec = *f.ACodec
	}
	if f.ASR != nil {
		out.ASR = int(*f.ASR)
	}
	if f.Width != nil {
		out.Width = int(*f.Width)
	}
	if f.Height != nil {
		out.Height = int(*f.Height)
	}
	if f.Language != nil {
		out.Language = *f.Language
	}
	if f.Quality != nil {
		out.Quality = int(*f.Quality)
	}
	if drm, ok := f.HasDRM.(bool); ok {
		out.HasDRM = drm
	}
	if f.FileSizeApprox != nil {
		out.FilesizeApprox = int64(*f.FileSizeApprox)
	}
	if f.AudioChannels != nil {
		out.AudioChannels = int(*f.AudioChannels)
	}
	return out
}

// DownloadVideo downloads a video (or short) to destDir, returning the
// file path yt-dlp wrote to (spec §4.1 download_video, §4.5 shorts
// downloader).
func (e *Extractor) DownloadVideo(ctx context.Context, videoURL, destDir string) (string, error) {
	cmd := e.baseCommand().
		NoPlaylist().
		Continue().
		NoOverwrites().
		Format("bv+ba/b").
		MergeOutputFormat("mp4").
		Output(destDir + "/%(id)s.%(ext)s")

	r, err := cmd.Run(ctx, videoURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnavailable, videoURL, err)
	}

	infos, err := r.GetExtractedInfo()
	if err != nil || len(infos) == 0 || infos[0] == nil {
		return "", fmt.Errorf("%w: %s", ErrMalformed, videoURL)
	}

	info := infos[0]
	if info.Filename != nil {
		return *info.Filename, nil
	}
	if info.AltFilename != nil {
		return *info.AltFilename, nil
	}
	return "", fmt.Errorf("%w: %s: no filename in result", ErrMalformed, videoURL)
}
