package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashtag(t *testing.T) {
	cases := map[string]string{
		"Lenin Crew":          "Lenin_Crew",
		"A  B":                "A_B",
		"Профсоюз МПРА-СПб":   "Профсоюз_МПРА_СПб",
		"  trim me  ":         "trim_me",
		"weird!!chars??here":  "weirdcharshere",
	}
	for input, want := range cases {
		assert.Equal(t, want, Hashtag(input), "input %q", input)
	}
}
