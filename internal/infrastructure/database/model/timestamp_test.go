package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	in := time.Date(2025, 1, 15, 11, 30, 0, 123456000, time.FixedZone("CET", 3600))
	stored := FormatTimestamp(in)
	assert.Equal(t, "2025-01-15T10:30:00.123456Z", stored)
	assert.True(t, in.Equal(ParseTimestamp(stored)))
}

func TestParseTimestamp_Formats(t *testing.T) {
	cases := map[string]time.Time{
		"2025-01-15T10:30:00.123456+00:00": time.Date(2025, 1, 15, 10, 30, 0, 123456000, time.UTC),
		"2025-01-15T12:30:00+02:00":        time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		"2025-01-15T10:30:00.5":            time.Date(2025, 1, 15, 10, 30, 0, 500000000, time.UTC),
		"2025-01-15T10:30:00":              time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		"2025-01-15":                       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got := ParseTimestamp(in)
		assert.True(t, want.Equal(got), "%s: got %s", in, got)
	}

	assert.True(t, ParseTimestamp("").IsZero())
	assert.True(t, ParseTimestamp("yesterday").IsZero())
}

func TestOptionalTimestamp(t *testing.T) {
	assert.Nil(t, FormatOptionalTimestamp(nil))
	assert.Nil(t, ParseOptionalTimestamp(nil))

	bad := "not-a-date"
	assert.Nil(t, ParseOptionalTimestamp(&bad))

	deadline := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	stored := FormatOptionalTimestamp(&deadline)
	require.NotNil(t, stored)
	parsed := ParseOptionalTimestamp(stored)
	require.NotNil(t, parsed)
	assert.True(t, deadline.Equal(*parsed))
}
