package sqlite

import (
	"time"
)

// Timestamps are stored zone-naive: the layout carries no offset and
// parsed values come back in UTC with the stored wall-clock fields.
const (
	dbTimeLayout       = "2006-01-02 15:04:05.000"
	dbTimeLayoutNoFrac = "2006-01-02 15:04:05"
)

// FormatTimeForDB formats a time.Time value as zone-naive text for database storage
func FormatTimeForDB(t time.Time) string {
	return t.Format(dbTimeLayout)
}

// FormatTimePtrForDB formats a *time.Time value, returning nil if the pointer is nil
func FormatTimePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatTimeForDB(*t)
}

// ParseTimeFromDB parses a zone-naive time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	t, err := time.Parse(dbTimeLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(dbTimeLayoutNoFrac, s)
}
