package pest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoords(t *testing.T) {
	lat, lon, ok := parseCoords("18.52", "73.86")
	assert.True(t, ok)
	assert.Equal(t, 18.52, lat)
	assert.Equal(t, 73.86, lon)

	cases := []struct {
		name     string
		lat, lon string
	}{
		{"both missing", "", ""},
		{"lat missing", "", "73.86"},
		{"lon missing", "18.52", ""},
		{"lat malformed", "north", "73.86"},
		{"lon malformed", "18.52", "east"},
		{"lat out of range", "95", "73.86"},
		{"lon out of range", "18.52", "181"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok := parseCoords(tc.lat, tc.lon)
			assert.False(t, ok, "coords %q/%q must not validate", tc.lat, tc.lon)
		})
	}
}
