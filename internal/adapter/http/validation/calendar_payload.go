package validation

import (
	"errors"

	"studyplanner/internal/core/domain"
)

var ErrInvalidCalendarWindow = errors.New("invalid calendar window")

// BuildCalendarWindow parses the optional start_date/end_date query pair.
// Filtering only applies when both bounds parse; supplying one bound
// alone yields an unbounded window, matching the calendar contract.
func BuildCalendarWindow(startDate, endDate string) (domain.CalendarWindow, error) {
	if startDate == "" || endDate == "" {
		return domain.CalendarWindow{}, nil
	}

	start, err := ParseDatetime(startDate)
	if err != nil {
		return domain.CalendarWindow{}, ErrInvalidCalendarWindow
	}

	end, err := ParseDatetime(endDate)
	if err != nil {
		return domain.CalendarWindow{}, ErrInvalidCalendarWindow
	}

	return domain.CalendarWindow{Start: &start, End: &end}, nil
}
