package youtubeapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISO8601Duration(t *testing.T) {
	cases := map[string]int64{
		"PT1H2M3S": 3723,
		"PT15M":    900,
		"PT45S":    45,
		"PT2H":     7200,
		"garbage":  0,
		"":         0,
	}
	for input, want := range cases {
		assert.Equal(t, want, parseISO8601Duration(input), "input %q", input)
	}
}
