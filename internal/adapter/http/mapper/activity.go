package mapper

import (
	"time"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

func ToActivityItems(activities []domain.Activity) []dto.ActivityItem {
	items := make([]dto.ActivityItem, 0, len(activities))
	for _, activity := range activities {
		items = append(items, ToActivityItem(activity))
	}
	return items
}

func ToActivityItem(activity domain.Activity) dto.ActivityItem {
	item := dto.ActivityItem{
		ID:            activity.ID,
		UserID:        activity.UserID,
		Title:         activity.Title,
		ActivityType:  string(activity.ActivityType),
		StartDatetime: activity.StartDatetime.Format(time.RFC3339),
		EndDatetime:   activity.EndDatetime.Format(time.RFC3339),
		Color:         activity.Color,
		CreatedAt:     activity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     activity.UpdatedAt.Format(time.RFC3339),
	}

	if activity.Description != nil {
		value := *activity.Description
		item.Description = &value
	}

	if activity.Location != nil {
		value := *activity.Location
		item.Location = &value
	}

	if activity.Recurrence != nil {
		item.Recurrence = &dto.RecurrenceItem{
			Frequency:  string(activity.Recurrence.Frequency),
			Interval:   activity.Recurrence.Interval,
			DaysOfWeek: activity.Recurrence.DaysOfWeek,
			EndDate:    activity.Recurrence.EndDate,
		}
	}

	return item
}
