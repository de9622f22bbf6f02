package domain

import "time"

type TaskType string

const (
	TaskTypeAssignment TaskType = "assignment"
	TaskTypeTest       TaskType = "test"
	TaskTypeProject    TaskType = "project"
	TaskTypeHomework   TaskType = "homework"
	TaskTypeStudy      TaskType = "study"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultTaskColor is assigned to tasks created without an explicit color.
const DefaultTaskColor = "#6366f1"

type Task struct {
	ID                string
	UserID            string
	Title             string
	Description       *string
	Subject           string
	TaskType          TaskType
	Priority          Priority
	DueDate           time.Time
	DueTime           *string
	EstimatedDuration *int
	Completed         bool
	CompletedAt       *time.Time
	Color             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CreateTaskInput struct {
	Title             string
	Description       *string
	Subject           string
	TaskType          TaskType
	Priority          Priority
	DueDate           time.Time
	DueTime           *string
	EstimatedDuration *int
	Color             string
}

type UpdateTaskInput struct {
	Title             *string
	Description       *string
	Subject           *string
	TaskType          *TaskType
	Priority          *Priority
	DueDate           *time.Time
	DueTime           *string
	EstimatedDuration *int
	Completed         *bool
	Color             *string
}

// TaskPatch is the resolved write for a task update: the caller's partial
// input plus the completed_at and updated_at values the service derived
// from it. CompletedAtSet distinguishes "clear completed_at" from "leave
// it alone".
type TaskPatch struct {
	UpdateTaskInput
	CompletedAt    *time.Time
	CompletedAtSet bool
	UpdatedAt      time.Time
}

// TaskFilter narrows task listings. A nil Completed matches every task.
type TaskFilter struct {
	Completed *bool
}

// TaskStats is the dashboard counter set for one user.
// PendingTasks is always TotalTasks - CompletedTasks.
type TaskStats struct {
	TotalTasks      int64
	CompletedTasks  int64
	PendingTasks    int64
	OverdueTasks    int64
	UpcomingTasks   int64
	TotalActivities int64
}
