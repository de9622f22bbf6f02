package mapper

import (
	"time"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:                task.ID,
		UserID:            task.UserID,
		Title:             task.Title,
		Subject:           task.Subject,
		TaskType:          string(task.TaskType),
		Priority:          string(task.Priority),
		DueDate:           task.DueDate.Format(time.RFC3339),
		DueTime:           task.DueTime,
		EstimatedDuration: task.EstimatedDuration,
		Completed:         task.Completed,
		Color:             task.Color,
		CreatedAt:         task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	return item
}
