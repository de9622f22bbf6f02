package dto

type RecurrencePayload struct {
	Frequency  string  `json:"frequency" binding:"required,oneof=daily weekly monthly"`
	Interval   *int    `json:"interval" binding:"omitempty,gte=1"`
	DaysOfWeek []int   `json:"days_of_week" binding:"omitempty,max=7,dive,gte=0,lte=6"`
	EndDate    *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type RecurrenceItem struct {
	Frequency  string  `json:"frequency"`
	Interval   int     `json:"interval"`
	DaysOfWeek []int   `json:"days_of_week,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

type ActivityItem struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Title         string          `json:"title"`
	Description   *string         `json:"description,omitempty"`
	ActivityType  string          `json:"activity_type"`
	StartDatetime string          `json:"start_datetime"`
	EndDatetime   string          `json:"end_datetime"`
	Location      *string         `json:"location,omitempty"`
	Recurrence    *RecurrenceItem `json:"recurrence,omitempty"`
	Color         string          `json:"color"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type CreateActivityRequest struct {
	Title         string             `json:"title" binding:"required,max=255"`
	Description   *string            `json:"description" binding:"omitempty,max=65535"`
	ActivityType  string             `json:"activity_type" binding:"required,oneof=sports club meeting practice competition event"`
	StartDatetime string             `json:"start_datetime" binding:"required"`
	EndDatetime   string             `json:"end_datetime" binding:"required"`
	Location      *string            `json:"location" binding:"omitempty,max=255"`
	Recurrence    *RecurrencePayload `json:"recurrence" binding:"omitempty"`
	Color         *string            `json:"color" binding:"omitempty,max=32"`
}

type UpdateActivityRequest struct {
	Title         *string            `json:"title" binding:"omitempty,max=255"`
	Description   *string            `json:"description" binding:"omitempty,max=65535"`
	ActivityType  *string            `json:"activity_type" binding:"omitempty,oneof=sports club meeting practice competition event"`
	StartDatetime *string            `json:"start_datetime" binding:"omitempty"`
	EndDatetime   *string            `json:"end_datetime" binding:"omitempty"`
	Location      *string            `json:"location" binding:"omitempty,max=255"`
	Recurrence    *RecurrencePayload `json:"recurrence" binding:"omitempty"`
	Color         *string            `json:"color" binding:"omitempty,max=32"`
}
