package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

type ActivityService struct {
	activityRepository ports.ActivityRepository
	userRepository     ports.UserRepository
}

func NewActivityService(activityRepository ports.ActivityRepository, userRepository ports.UserRepository) *ActivityService {
	return &ActivityService{activityRepository: activityRepository, userRepository: userRepository}
}

func (s *ActivityService) CreateActivity(ctx context.Context, userID string, input domain.CreateActivityInput) (domain.Activity, error) {
	if _, err := s.userRepository.GetByID(ctx, userID); err != nil {
		return domain.Activity{}, err
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultActivityColor
	}

	recurrence := input.Recurrence
	if recurrence != nil && recurrence.Interval <= 0 {
		copied := *recurrence
		copied.Interval = 1
		recurrence = &copied
	}

	now := time.Now().UTC()
	activity := domain.Activity{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		ActivityType:  input.ActivityType,
		StartDatetime: input.StartDatetime,
		EndDatetime:   input.EndDatetime,
		Location:      input.Location,
		Recurrence:    recurrence,
		Color:         color,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.activityRepository.Insert(ctx, activity); err != nil {
		return domain.Activity{}, err
	}

	return activity, nil
}

func (s *ActivityService) ListUserActivities(ctx context.Context, userID string) ([]domain.Activity, error) {
	return s.activityRepository.ListByUser(ctx, userID)
}

func (s *ActivityService) GetActivity(ctx context.Context, id string) (domain.Activity, error) {
	return s.activityRepository.GetByID(ctx, id)
}

func (s *ActivityService) UpdateActivity(ctx context.Context, id string, input domain.UpdateActivityInput) (domain.Activity, error) {
	patch := domain.ActivityPatch{UpdateActivityInput: input, UpdatedAt: time.Now().UTC()}

	if err := s.activityRepository.Update(ctx, id, patch); err != nil {
		return domain.Activity{}, err
	}

	return s.activityRepository.GetByID(ctx, id)
}

func (s *ActivityService) DeleteActivity(ctx context.Context, id string) error {
	return s.activityRepository.Delete(ctx, id)
}

var _ ports.ActivityService = (*ActivityService)(nil)
