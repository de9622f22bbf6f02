package domain

import "time"

type ActivityType string

const (
	ActivitySports      ActivityType = "sports"
	ActivityClub        ActivityType = "club"
	ActivityMeeting     ActivityType = "meeting"
	ActivityPractice    ActivityType = "practice"
	ActivityCompetition ActivityType = "competition"
	ActivityEvent       ActivityType = "event"
)

// DefaultActivityColor is assigned to activities created without an explicit color.
const DefaultActivityColor = "#10b981"

type RecurrenceFrequency string

const (
	RecurrenceDaily   RecurrenceFrequency = "daily"
	RecurrenceWeekly  RecurrenceFrequency = "weekly"
	RecurrenceMonthly RecurrenceFrequency = "monthly"
)

// RecurrencePattern is stored verbatim with its activity. Nothing in the
// system expands it into concrete occurrences.
type RecurrencePattern struct {
	Frequency  RecurrenceFrequency
	Interval   int
	DaysOfWeek []int
	EndDate    *string
}

type Activity struct {
	ID            string
	UserID        string
	Title         string
	Description   *string
	ActivityType  ActivityType
	StartDatetime time.Time
	EndDatetime   time.Time
	Location      *string
	Recurrence    *RecurrencePattern
	Color         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateActivityInput struct {
	Title         string
	Description   *string
	ActivityType  ActivityType
	StartDatetime time.Time
	EndDatetime   time.Time
	Location      *string
	Recurrence    *RecurrencePattern
	Color         string
}

type UpdateActivityInput struct {
	Title         *string
	Description   *string
	ActivityType  *ActivityType
	StartDatetime *time.Time
	EndDatetime   *time.Time
	Location      *string
	Recurrence    *RecurrencePattern
	Color         *string
}

// ActivityPatch mirrors TaskPatch for activities, which have no
// completion bookkeeping.
type ActivityPatch struct {
	UpdateActivityInput
	UpdatedAt time.Time
}

// CalendarWindow bounds a calendar query. Both bounds must be present for
// filtering to apply; a partial window returns the full data set.
type CalendarWindow struct {
	Start *time.Time
	End   *time.Time
}

func (w CalendarWindow) Bounded() bool {
	return w.Start != nil && w.End != nil
}

// CalendarData pairs a user's tasks and activities for one window. The two
// lists are never merged or sorted together.
type CalendarData struct {
	Tasks      []Task
	Activities []Activity
}
