package model

import "time"

// Timestamps are stored as ISO-8601 strings, not BSON dates.
const timestampLayout = time.RFC3339Nano

// Documents written without a zone offset are read back as UTC.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatTimestamp renders t in UTC for storage.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseTimestamp reads a stored timestamp. Unparseable values yield the zero time.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t.UTC()
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatOptionalTimestamp is FormatTimestamp for optional fields.
func FormatOptionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}

// ParseOptionalTimestamp is ParseTimestamp for optional fields.
func ParseOptionalTimestamp(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := ParseTimestamp(*s)
	if t.IsZero() {
		return nil
	}
	return &t
}
