package ports

import (
	"context"
	"time"

	"studyplanner/internal/core/domain"
)

type TaskRepository interface {
	Insert(ctx context.Context, task domain.Task) error
	ListByUser(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error)
	ListDueBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountCompleted(ctx context.Context, userID string) (int64, error)
	CountOverdue(ctx context.Context, userID string, now time.Time) (int64, error)
	CountUpcoming(ctx context.Context, userID string, from, to time.Time) (int64, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error)
	ListUserTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
