package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyplanner/internal/app/service"
	"studyplanner/internal/core/domain"
)

func TestDashboardService_Stats_PendingIsTotalMinusCompleted(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	taskRepo.On("CountByUser", mock.Anything, "u1").Return(int64(12), nil).Once()
	taskRepo.On("CountCompleted", mock.Anything, "u1").Return(int64(5), nil).Once()
	taskRepo.On("CountOverdue", mock.Anything, "u1", mock.Anything).Return(int64(2), nil).Once()
	taskRepo.On("CountUpcoming", mock.Anything, "u1", mock.Anything, mock.Anything).Return(int64(3), nil).Once()

	activityRepo := new(activityRepositoryMock)
	activityRepo.On("CountByUser", mock.Anything, "u1").Return(int64(4), nil).Once()

	svc := service.NewDashboardService(taskRepo, activityRepo)
	stats, err := svc.Stats(context.Background(), "u1")

	require.NoError(t, err)
	require.Equal(t, int64(12), stats.TotalTasks)
	require.Equal(t, int64(5), stats.CompletedTasks)
	require.Equal(t, stats.TotalTasks-stats.CompletedTasks, stats.PendingTasks)
	require.Equal(t, int64(2), stats.OverdueTasks)
	require.Equal(t, int64(3), stats.UpcomingTasks)
	require.Equal(t, int64(4), stats.TotalActivities)
	taskRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

func TestDashboardService_Stats_UpcomingWindowIsSevenDays(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	taskRepo.On("CountByUser", mock.Anything, "u1").Return(int64(0), nil).Once()
	taskRepo.On("CountCompleted", mock.Anything, "u1").Return(int64(0), nil).Once()
	taskRepo.On("CountOverdue", mock.Anything, "u1", mock.Anything).Return(int64(0), nil).Once()
	taskRepo.On("CountUpcoming", mock.Anything, "u1", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		from := args.Get(2).(time.Time)
		to := args.Get(3).(time.Time)
		require.Equal(t, 7*24*time.Hour, to.Sub(from))
	}).Return(int64(0), nil).Once()

	activityRepo := new(activityRepositoryMock)
	activityRepo.On("CountByUser", mock.Anything, "u1").Return(int64(0), nil).Once()

	svc := service.NewDashboardService(taskRepo, activityRepo)
	_, err := svc.Stats(context.Background(), "u1")

	require.NoError(t, err)
	taskRepo.AssertExpectations(t)
}

func TestDashboardService_Calendar_BoundedWindowUsesRangeQueries(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	taskRepo := new(taskRepositoryMock)
	taskRepo.On("ListDueBetween", mock.Anything, "u1", start, end).Return([]domain.Task{{ID: "t1"}}, nil).Once()

	activityRepo := new(activityRepositoryMock)
	activityRepo.On("ListStartingBetween", mock.Anything, "u1", start, end).Return([]domain.Activity{{ID: "a1"}}, nil).Once()

	svc := service.NewDashboardService(taskRepo, activityRepo)
	data, err := svc.Calendar(context.Background(), "u1", domain.CalendarWindow{Start: &start, End: &end})

	require.NoError(t, err)
	require.Len(t, data.Tasks, 1)
	require.Len(t, data.Activities, 1)
	taskRepo.AssertNotCalled(t, "ListByUser")
	activityRepo.AssertNotCalled(t, "ListByUser")
	taskRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

func TestDashboardService_Calendar_PartialWindowReturnsEverything(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	taskRepo := new(taskRepositoryMock)
	taskRepo.On("ListByUser", mock.Anything, "u1", domain.TaskFilter{}).Return([]domain.Task{{ID: "t1"}, {ID: "t2"}}, nil).Once()

	activityRepo := new(activityRepositoryMock)
	activityRepo.On("ListByUser", mock.Anything, "u1").Return([]domain.Activity{{ID: "a1"}}, nil).Once()

	svc := service.NewDashboardService(taskRepo, activityRepo)
	data, err := svc.Calendar(context.Background(), "u1", domain.CalendarWindow{Start: &start})

	require.NoError(t, err)
	require.Len(t, data.Tasks, 2)
	require.Len(t, data.Activities, 1)
	taskRepo.AssertNotCalled(t, "ListDueBetween")
	activityRepo.AssertNotCalled(t, "ListStartingBetween")
}
