package dto

type CalendarResponse struct {
	Tasks      []TaskItem     `json:"tasks"`
	Activities []ActivityItem `json:"activities"`
}

type StatsResponse struct {
	TotalTasks      int64 `json:"total_tasks"`
	CompletedTasks  int64 `json:"completed_tasks"`
	PendingTasks    int64 `json:"pending_tasks"`
	OverdueTasks    int64 `json:"overdue_tasks"`
	UpcomingTasks   int64 `json:"upcoming_tasks"`
	TotalActivities int64 `json:"total_activities"`
}
