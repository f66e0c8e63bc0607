// Package youtubeapi is the Authoritative Adapter (spec §4.2): the
// only component that talks to the YouTube Data API. Grounded on
// vod-tender's backend/youtubeapi (oauth2.Config wiring) and
// ejv2-yt-archiver's api.go (batched Channels.List/Videos.List calls).
package youtubeapi

import "errors"

var (
	// ErrAuthRequired is returned when no cached credentials exist and
	// the process has no interactive console to complete the OAuth
	// flow (spec §4.2 auth state machine).
	ErrAuthRequired = errors.New("youtubeapi: interactive authentication required")
	// ErrChannelNotFound names the case where the Data API returns zero
	// items for a channel id. ChannelInfo does not return it; such ids
	// are simply absent from its result map.
	ErrChannelNotFound = errors.New("youtubeapi: channel not found")
	// ErrQuotaExceeded names a 403 quota rejection from the Data API.
	// ChannelInfo and VideoInfo do not return it; they wrap the API
	// error as received.
	ErrQuotaExceeded = errors.New("youtubeapi: quota exceeded")
)
