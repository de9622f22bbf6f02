package validation

import (
	"errors"
	"strings"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

var ErrInvalidActivityPayload = errors.New("invalid activity payload")

func BuildCreateActivityInput(req dto.CreateActivityRequest) (domain.CreateActivityInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateActivityInput{}, ErrInvalidActivityPayload
	}

	start, err := ParseDatetime(req.StartDatetime)
	if err != nil {
		return domain.CreateActivityInput{}, ErrInvalidActivityPayload
	}

	end, err := ParseDatetime(req.EndDatetime)
	if err != nil {
		return domain.CreateActivityInput{}, ErrInvalidActivityPayload
	}

	input := domain.CreateActivityInput{
		Title:         title,
		Description:   req.Description,
		ActivityType:  domain.ActivityType(req.ActivityType),
		StartDatetime: start,
		EndDatetime:   end,
		Location:      req.Location,
		Recurrence:    buildRecurrence(req.Recurrence),
	}

	if req.Color != nil {
		input.Color = *req.Color
	}

	return input, nil
}

func BuildUpdateActivityInput(req dto.UpdateActivityRequest) (domain.UpdateActivityInput, error) {
	input := domain.UpdateActivityInput{
		Description: req.Description,
		Location:    req.Location,
		Recurrence:  buildRecurrence(req.Recurrence),
		Color:       req.Color,
	}

	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
		}
		input.Title = &value
	}

	if req.ActivityType != nil {
		value := domain.ActivityType(*req.ActivityType)
		input.ActivityType = &value
	}

	if req.StartDatetime != nil {
		value, err := ParseDatetime(*req.StartDatetime)
		if err != nil {
			return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
		}
		input.StartDatetime = &value
	}

	if req.EndDatetime != nil {
		value, err := ParseDatetime(*req.EndDatetime)
		if err != nil {
			return domain.UpdateActivityInput{}, ErrInvalidActivityPayload
		}
		input.EndDatetime = &value
	}

	return input, nil
}

func buildRecurrence(payload *dto.RecurrencePayload) *domain.RecurrencePattern {
	if payload == nil {
		return nil
	}

	interval := 1
	if payload.Interval != nil {
		interval = *payload.Interval
	}

	return &domain.RecurrencePattern{
		Frequency:  domain.RecurrenceFrequency(payload.Frequency),
		Interval:   interval,
		DaysOfWeek: payload.DaysOfWeek,
		EndDate:    payload.EndDate,
	}
}
