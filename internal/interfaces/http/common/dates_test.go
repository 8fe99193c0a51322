package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	loc := time.FixedZone("IST", int(5.5*60*60))

	parsed, ok := ParseDateTime("2025-03-05T14:30", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 5, 14, 30, 0, 0, loc), parsed)

	parsed, ok = ParseDateTime("2025-03-05", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, loc), parsed)

	parsed, ok = ParseDateTime("2025-03-05T14:30:00Z", nil)
	require.True(t, ok)
	assert.True(t, parsed.Equal(time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)))

	_, ok = ParseDateTime("", loc)
	assert.False(t, ok)

	_, ok = ParseDateTime("05/03/2025", loc)
	assert.False(t, ok)
}

func TestEndOfDay(t *testing.T) {
	start := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	end := EndOfDay(start)

	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.Before(start.Add(24*time.Hour)))
	assert.True(t, end.After(start.Add(24*time.Hour-time.Second)))
}
