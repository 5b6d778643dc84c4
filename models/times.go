package models

import (
	"errors"
	"strings"
	"time"
)

// Reminder times arrive either as 24-hour strings ("20:00") from the
// extraction backend or as 12-hour display strings ("8:00 PM") picked in the
// app. Both are accepted everywhere a reminder time is read.
var reminderLayouts = []string{"15:04", "3:04 PM"}

func ParseReminderTime(value string) (hour int, minute int, err error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for _, layout := range reminderLayouts {
		t, parseErr := time.Parse(layout, normalized)
		if parseErr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, errors.New("unrecognized reminder time: " + value)
}

// FormatReminderTime renders the 12-hour display form. Formatting and
// re-parsing a time always yields the same hour and minute.
func FormatReminderTime(hour int, minute int) string {
	t := time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// NextOccurrence returns the next time the given wall-clock time comes up:
// today if it is still ahead, otherwise tomorrow.
func NextOccurrence(now time.Time, hour int, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
