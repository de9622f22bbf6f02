package service

import (
	"context"
	"time"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

// upcomingWindow is how far ahead the stats endpoint looks for upcoming
// tasks.
const upcomingWindow = 7 * 24 * time.Hour

type DashboardService struct {
	taskRepository     ports.TaskRepository
	activityRepository ports.ActivityRepository
}

func NewDashboardService(taskRepository ports.TaskRepository, activityRepository ports.ActivityRepository) *DashboardService {
	return &DashboardService{taskRepository: taskRepository, activityRepository: activityRepository}
}

func (s *DashboardService) Calendar(ctx context.Context, userID string, window domain.CalendarWindow) (domain.CalendarData, error) {
	var (
		tasks      []domain.Task
		activities []domain.Activity
		err        error
	)

	if window.Bounded() {
		tasks, err = s.taskRepository.ListDueBetween(ctx, userID, *window.Start, *window.End)
		if err != nil {
			return domain.CalendarData{}, err
		}
		activities, err = s.activityRepository.ListStartingBetween(ctx, userID, *window.Start, *window.End)
		if err != nil {
			return domain.CalendarData{}, err
		}
	} else {
		tasks, err = s.taskRepository.ListByUser(ctx, userID, domain.TaskFilter{})
		if err != nil {
			return domain.CalendarData{}, err
		}
		activities, err = s.activityRepository.ListByUser(ctx, userID)
		if err != nil {
			return domain.CalendarData{}, err
		}
	}

	return domain.CalendarData{Tasks: tasks, Activities: activities}, nil
}

// Stats runs one counting query per figure. Volumes are small enough that
// a single aggregation pipeline is not worth the opacity.
func (s *DashboardService) Stats(ctx context.Context, userID string) (domain.TaskStats, error) {
	total, err := s.taskRepository.CountByUser(ctx, userID)
	if err != nil {
		return domain.TaskStats{}, err
	}

	completed, err := s.taskRepository.CountCompleted(ctx, userID)
	if err != nil {
		return domain.TaskStats{}, err
	}

	now := time.Now().UTC()
	overdue, err := s.taskRepository.CountOverdue(ctx, userID, now)
	if err != nil {
		return domain.TaskStats{}, err
	}

	upcoming, err := s.taskRepository.CountUpcoming(ctx, userID, now, now.Add(upcomingWindow))
	if err != nil {
		return domain.TaskStats{}, err
	}

	activities, err := s.activityRepository.CountByUser(ctx, userID)
	if err != nil {
		return domain.TaskStats{}, err
	}

	return domain.TaskStats{
		TotalTasks:      total,
		CompletedTasks:  completed,
		PendingTasks:    total - completed,
		OverdueTasks:    overdue,
		UpcomingTasks:   upcoming,
		TotalActivities: activities,
	}, nil
}

var _ ports.DashboardService = (*DashboardService)(nil)
