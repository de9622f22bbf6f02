package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"studyplanner/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Insert(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) Update(ctx context.Context, id string, input domain.UpdateUserInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Insert(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) ListByUser(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, userID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListDueBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, userID, start, end)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskRepositoryMock) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) CountCompleted(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) CountOverdue(ctx context.Context, userID string, now time.Time) (int64, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) CountUpcoming(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type activityRepositoryMock struct {
	mock.Mock
}

func (m *activityRepositoryMock) Insert(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *activityRepositoryMock) ListByUser(ctx context.Context, userID string) ([]domain.Activity, error) {
	args := m.Called(ctx, userID)

	var activities []domain.Activity
	if value := args.Get(0); value != nil {
		activities = value.([]domain.Activity)
	}
	return activities, args.Error(1)
}

func (m *activityRepositoryMock) ListStartingBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.Activity, error) {
	args := m.Called(ctx, userID, start, end)

	var activities []domain.Activity
	if value := args.Get(0); value != nil {
		activities = value.([]domain.Activity)
	}
	return activities, args.Error(1)
}

func (m *activityRepositoryMock) GetByID(ctx context.Context, id string) (domain.Activity, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *activityRepositoryMock) Update(ctx context.Context, id string, patch domain.ActivityPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *activityRepositoryMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *activityRepositoryMock) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type sessionRepositoryMock struct {
	mock.Mock
}

func (m *sessionRepositoryMock) Insert(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *sessionRepositoryMock) GetByToken(ctx context.Context, token string) (domain.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *sessionRepositoryMock) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
