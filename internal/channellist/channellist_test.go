package channellist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_StripsVideosSuffixAndDedupes(t *testing.T) {
	got := Canonicalize([]string{
		"https://www.youtube.com/@x/videos",
		"https://www.youtube.com/@x",
	})
	assert.Equal(t, []string{"https://www.youtube.com/@x"}, got)
}

func TestCanonicalize_SortsAndDropsUnmatched(t *testing.T) {
	got := Canonicalize([]string{
		"https://www.youtube.com/@zeta",
		"https://www.youtube.com/@alpha",
		"https://not-youtube.example/@bogus",
		"https://www.youtube.com/channel/UC123/videos",
	})
	assert.Equal(t, []string{
		"https://www.youtube.com/@alpha",
		"https://www.youtube.com/@zeta",
		"https://www.youtube.com/channel/UC123",
	}, got)
}

func TestCanonicalize_AcceptsCustomURLForm(t *testing.T) {
	got := Canonicalize([]string{"https://www.youtube.com/c/SomeShow/videos"})
	assert.Equal(t, []string{"https://www.youtube.com/c/SomeShow"}, got)
}
