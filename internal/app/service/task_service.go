package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
}

func NewTaskService(taskRepository ports.TaskRepository, userRepository ports.UserRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, userRepository: userRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	// Creating a task under an unknown user must not write anything.
	if _, err := s.userRepository.GetByID(ctx, userID); err != nil {
		return domain.Task{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultTaskColor
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:                uuid.NewString(),
		UserID:            userID,
		Title:             input.Title,
		Description:       input.Description,
		Subject:           input.Subject,
		TaskType:          input.TaskType,
		Priority:          priority,
		DueDate:           input.DueDate,
		DueTime:           input.DueTime,
		EstimatedDuration: input.EstimatedDuration,
		Completed:         false,
		Color:             color,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.taskRepository.Insert(ctx, task); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) ListUserTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.ListByUser(ctx, userID, filter)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	now := time.Now().UTC()
	patch := domain.TaskPatch{UpdateTaskInput: input, UpdatedAt: now}

	// completed and completed_at move together: setting completed true
	// stamps completed_at, setting it false clears it.
	if input.Completed != nil {
		patch.CompletedAtSet = true
		if *input.Completed {
			completedAt := now
			patch.CompletedAt = &completedAt
		}
	}

	if err := s.taskRepository.Update(ctx, id, patch); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepository.Delete(ctx, id)
}

var _ ports.TaskService = (*TaskService)(nil)
