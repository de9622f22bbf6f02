package mapper

import (
	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

func ToCalendarResponse(data domain.CalendarData) dto.CalendarResponse {
	return dto.CalendarResponse{
		Tasks:      ToTaskItems(data.Tasks),
		Activities: ToActivityItems(data.Activities),
	}
}

func ToStatsResponse(stats domain.TaskStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalTasks:      stats.TotalTasks,
		CompletedTasks:  stats.CompletedTasks,
		PendingTasks:    stats.PendingTasks,
		OverdueTasks:    stats.OverdueTasks,
		UpcomingTasks:   stats.UpcomingTasks,
		TotalActivities: stats.TotalActivities,
	}
}
