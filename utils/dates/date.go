package dates

import (
	"time"

	"github.com/dustin/go-humanize"
)

const (
	DateFormat = "2006-01-02"
)

// FromEpochMillis converts upstream epoch milliseconds to a UTC instant.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func DateToString(from time.Time, dateFormat string, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return from.In(location).Format(dateFormat)
}

// Age renders the distance between t and now, e.g. "3 hours ago".
func Age(t time.Time, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
