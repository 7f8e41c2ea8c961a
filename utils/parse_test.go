package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d := ParseDate("2024-02-01")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), *d)

	rfc := ParseDate("2024-02-01T10:30:00Z")
	require.NotNil(t, rfc)
	assert.Equal(t, 10, rfc.Hour())

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("01/02/2024"))
}

func TestParseNumbers(t *testing.T) {
	assert.Equal(t, 2.5, ParseFloat("2.5"))
	assert.Equal(t, 0.0, ParseFloat("junk"))
	assert.Equal(t, 42, ParseInt("42"))
	assert.Equal(t, 0, ParseInt(""))
}
