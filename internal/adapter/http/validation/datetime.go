package validation

import (
	"errors"
	"time"
)

// Accepted timestamp layouts, tried in order. The SPA sends RFC3339; the
// web forms send datetime-local values without a zone; bare dates come
// from date pickers.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

var errBadDatetime = errors.New("unrecognized datetime")

func ParseDatetime(value string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, errBadDatetime
}

// ParseTimeOfDay normalizes a clock value to HH:MM:SS.
func ParseTimeOfDay(value string) (string, error) {
	for _, layout := range timeOfDayLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("15:04:05"), nil
		}
	}
	return "", errBadDatetime
}
