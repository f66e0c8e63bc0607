// Package channellist parses operator-maintained channel list files
// and canonicalizes the URLs inside them (spec §6 Channel list file).
// Grounded on the teacher's internal/cfg file-reading conventions,
// generalized from Tubarr's single-format channel file to the two
// formats (.json/.txt) the spec requires.
package channellist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"ytwatch/internal/logging"
)

// List is one named collection of canonicalized channel URLs.
type List struct {
	Name     string
	Channels []string
}

var acceptedURLPattern = regexp.MustCompile(
	`^https://www\.youtube\.com/(channel/[\w-]+|@[\w.\-]+|c/[\w.\-]+)/?$`,
)

// jsonList mirrors the .json channel list shape: {"channels": [...], "name": "..."}.
type jsonList struct {
	Channels []string `json:"channels"`
	Name     string   `json:"name"`
}

// Load reads a channel list file, picking the parser by extension,
// and returns it with its URLs canonicalized (spec §6).
func Load(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return List{}, fmt.Errorf("failed to read channel list %q: %w", path, err)
	}

	var raw []string
	var name string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var jl jsonList
		if err := json.Unmarshal(data, &jl); err != nil {
			return List{}, fmt.Errorf("failed to parse channel list json %q: %w", path, err)
		}
		raw = jl.Channels
		name = jl.Name
	case ".txt":
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			raw = append(raw, line)
		}
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	default:
		return List{}, fmt.Errorf("unsupported channel list extension %q", filepath.Ext(path))
	}

	return List{Name: name, Channels: Canonicalize(raw)}, nil
}

// Canonicalize strips a trailing "/videos" segment from each URL,
// drops anything that doesn't match one of the three accepted forms
// (logging it), de-duplicates, and returns the result sorted (spec §6,
// §8 canonicalize_channel_list).
func Canonicalize(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	var out []string

	for _, u := range urls {
		u = strings.TrimSpace(u)
		u = strings.TrimSuffix(u, "/videos")
		u = strings.TrimSuffix(u, "/")

		if !acceptedURLPattern.MatchString(u) {
			logging.L().Warn().Str("url", u).Msg("channel list entry does not match an accepted URL form")
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}

	sort.Strings(out)
	return out
}
