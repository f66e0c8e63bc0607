package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeMarkdownV2(t *testing.T) {
	assert.Equal(t, `hello\!`, escapeMarkdownV2("hello!"))
	assert.Equal(t, `a\.b\-c`, escapeMarkdownV2("a.b-c"))
	assert.Equal(t, "plain text", escapeMarkdownV2("plain text"))
}

func TestRender_NewVideoTemplate(t *testing.T) {
	out, err := Render("templates/new_video.tmpl", TemplateData{
		VideoTitle:     "Hello, World!",
		VideoURL:       "https://www.youtube.com/watch?v=abc",
		ChannelName:    "Lenin Crew",
		ChannelURL:     "https://www.youtube.com/@lenincrew",
		ChannelHashtag: Hashtag("Lenin Crew"),
	})
	require.NoError(t, err)
	assert.Contains(t, out, `Hello, World\!`)
	assert.Contains(t, out, "https://www.youtube.com/watch?v=abc")
	assert.Contains(t, out, "#Lenin_Crew")
}
