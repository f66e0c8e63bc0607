// Package extractor is the Extractor Adapter (spec §4.1): the only
// component that shells out to yt-dlp. Every public call returns one
// of this package's closed error set on failure, so callers never
// need to parse yt-dlp's stderr themselves.
package extractor

import "errors"

var (
	// ErrUnavailable means yt-dlp could not be run at all (missing
	// binary, network failure, non-zero exit with no usable output).
	ErrUnavailable = errors.New("extractor: unavailable")
	// ErrMalformed means yt-dlp ran but its output didn't parse into
	// the expected shape.
	ErrMalformed = errors.New("extractor: malformed output")
	// ErrNoData means yt-dlp succeeded but returned no entries for
	// the requested URL (e.g. a channel with zero public videos).
	ErrNoData = errors.New("extractor: no data")
)
