package photo

import (
	"fmt"
	"time"
)

// Instant is a timezone-aware point in time. Sources sometimes supply a bare
// date; those normalize to local midnight with DateOnly set, and display
// suppresses the fabricated time-of-day.
type Instant struct {
	t        time.Time
	dateOnly bool
}

// NewInstant wraps a fully specified time.
func NewInstant(t time.Time) Instant {
	return Instant{t: t}
}

// Time returns the underlying instant. Date-only values sit at local midnight.
func (i Instant) Time() time.Time {
	return i.t
}

// DateOnly reports whether the source omitted the time of day.
func (i Instant) DateOnly() bool {
	return i.dateOnly
}

// IsZero reports whether the instant is unset.
func (i Instant) IsZero() bool {
	return i.t.IsZero()
}

// Equal compares two instants, including the date-only flag.
func (i Instant) Equal(other Instant) bool {
	return i.dateOnly == other.dateOnly && i.t.Equal(other.t)
}

// String renders the instant for display, without a fabricated time of day.
func (i Instant) String() string {
	if i.dateOnly {
		return i.t.Format("2006-01-02")
	}
	return i.t.Format("2006-01-02 15:04:05")
}

// ExifString renders the instant in the colon-separated form embedded
// timestamp tags use.
func (i Instant) ExifString() string {
	return i.t.Format("2006:01:02 15:04:05")
}

// timestampLayouts are the RFC3339-like grammars accepted from XML logbooks,
// tried in order. Fractional seconds are accepted after any seconds field.
var timestampLayouts = []struct {
	layout string
	zoned  bool
}{
	{layout: time.RFC3339, zoned: true},
	{layout: "2006-01-02T15:04:05", zoned: false},
}

// ParseTimestamp reads an RFC3339 timestamp, an RFC3339-like timestamp
// without zone, or a bare date. Zone-less forms are interpreted in local
// time; bare dates normalize to local midnight with the date-only flag set.
func ParseTimestamp(s string) (Instant, error) {
	for _, grammar := range timestampLayouts {
		if grammar.zoned {
			if t, err := time.Parse(grammar.layout, s); err == nil {
				return Instant{t: t}, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(grammar.layout, s, time.Local); err == nil {
			return Instant{t: t}, nil
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return Instant{t: t, dateOnly: true}, nil
	}
	return Instant{}, fmt.Errorf("timestamp: %w: %q", ErrMalformedValue, s)
}

// ParseExifTimestamp reads the colon-separated timestamp form JSON logbooks
// use ("2022:04:30 18:29:15") or the prose form their notes use
// ("30 Apr 2022 at 17:57"), both interpreted in local time.
func ParseExifTimestamp(s string) (Instant, error) {
	if t, err := time.ParseInLocation("2006:01:02 15:04:05", s, time.Local); err == nil {
		return Instant{t: t}, nil
	}
	if t, err := time.ParseInLocation("2 Jan 2006 at 15:04", s, time.Local); err == nil {
		return Instant{t: t}, nil
	}
	return Instant{}, fmt.Errorf("timestamp: %w: %q", ErrMalformedValue, s)
}
