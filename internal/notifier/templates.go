package notifier

import (
	"fmt"
	"os"
	"strings"
	"text/template"
)

// markdownV2SpecialChars are the characters Telegram's MarkdownV2
// parser requires escaping outside of code blocks.
const markdownV2SpecialChars = "_*[]()~`>#+-=|{}.!"

func escapeMarkdownV2(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownV2SpecialChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

var templateFuncs = template.FuncMap{"escape": escapeMarkdownV2}

// TemplateData is the variable set available to news/shorts
// templates (spec §4.6): video_title, video_url, channel_name,
// channel_url, channel_hashtag. channel_hashtag is pre-sanitized by
// Hashtag and is never passed through escape.
type TemplateData struct {
	VideoTitle     string
	VideoURL       string
	ChannelName    string
	ChannelURL     string
	ChannelHashtag string
}

// Render loads the template file at path and executes it against
// data. Templates are reloaded from disk on every call so operators
// can swap them at runtime (spec §4.6 "templates may be swapped at
// runtime").
func Render(path string, data TemplateData) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %q: %w", path, err)
	}

	tmpl, err := template.New(path).Funcs(templateFuncs).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %q: %w", path, err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", path, err)
	}
	return out.String(), nil
}
