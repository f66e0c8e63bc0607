package extractor

import (
	"github.com/lrstanley/go-ytdlp"
)

// Extractor wraps go-ytdlp command construction, grounded on the
// pack's own _examples/simple and _examples/download usage patterns.
type Extractor struct {
	executable string
}

// New builds an Extractor. executable may be empty, in which case
// go-ytdlp resolves yt-dlp from PATH.
func New(executable string) *Extractor {
	return &Extractor{executable: executable}
}

// baseCommand returns a fresh command with the flags every invocation
// shares: quiet JSON output, no progress bar noise, no warnings.
func (e *Extractor) baseCommand() *ytdlp.Command {
	cmd := ytdlp.New().
		PrintJSON().
		NoProgress().
		NoWarnings()
	if e.executable != "" {
		cmd = cmd.SetExecutable(e.executable)
	}
	return cmd
}
