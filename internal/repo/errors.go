package repo

import "errors"

// The closed error taxonomy the Repository returns (spec §7). Callers
// use errors.Is against these sentinels rather than matching driver
// error strings.
var (
	ErrChannelNotFound    = errors.New("repo: channel not found")
	ErrVideoNotFound      = errors.New("repo: video not found")
	ErrIntegrityViolation = errors.New("repo: integrity violation")
)
