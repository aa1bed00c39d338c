package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCheckbox(t *testing.T) {
	// "y" is what a checked HTML checkbox submits; the rest covers JSON
	// clients and common variants.
	for _, v := range []string{"y", "Y", "on", "true", "1", " y "} {
		assert.True(t, parseCheckbox(v), "%q should count as checked", v)
	}
	for _, v := range []string{"", "n", "no", "false", "0", "maybe"} {
		assert.False(t, parseCheckbox(v), "%q should count as unchecked", v)
	}
}

func TestParseStartTime(t *testing.T) {
	rfc, err := parseStartTime("2026-06-01T20:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC), rfc)

	// The plain datetime layout the booking form posts is taken as UTC.
	plain, err := parseStartTime("2026-06-01 20:00:00")
	require.NoError(t, err)
	assert.True(t, rfc.Equal(plain))

	local, err := parseStartTime("2026-06-01T20:00")
	require.NoError(t, err)
	assert.True(t, rfc.Equal(local))

	_, err = parseStartTime("next friday")
	assert.Error(t, err)
	_, err = parseStartTime("")
	assert.Error(t, err)
}

func TestValidGenres(t *testing.T) {
	assert.True(t, validGenres(nil))
	assert.True(t, validGenres([]string{"Jazz", "Rock n Roll"}))
	assert.False(t, validGenres([]string{"Jazz", "Polka"}))
}
