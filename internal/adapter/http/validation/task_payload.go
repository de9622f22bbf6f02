package validation

import (
	"errors"
	"strings"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	subject := strings.TrimSpace(req.Subject)
	if title == "" || subject == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dueDate, err := ParseDatetime(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:             title,
		Description:       req.Description,
		Subject:           subject,
		TaskType:          domain.TaskType(req.TaskType),
		DueDate:           dueDate,
		EstimatedDuration: req.EstimatedDuration,
	}

	if req.Priority != nil {
		input.Priority = domain.Priority(*req.Priority)
	}

	if req.DueTime != nil {
		value, err := ParseTimeOfDay(*req.DueTime)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueTime = &value
	}

	if req.Color != nil {
		input.Color = *req.Color
	}

	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	input := domain.UpdateTaskInput{
		Description:       req.Description,
		EstimatedDuration: req.EstimatedDuration,
		Completed:         req.Completed,
		Color:             req.Color,
	}

	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &value
	}

	if req.Subject != nil {
		value := strings.TrimSpace(*req.Subject)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Subject = &value
	}

	if req.TaskType != nil {
		value := domain.TaskType(*req.TaskType)
		input.TaskType = &value
	}

	if req.Priority != nil {
		value := domain.Priority(*req.Priority)
		input.Priority = &value
	}

	if req.DueDate != nil {
		value, err := ParseDatetime(*req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &value
	}

	if req.DueTime != nil {
		value, err := ParseTimeOfDay(*req.DueTime)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueTime = &value
	}

	return input, nil
}
