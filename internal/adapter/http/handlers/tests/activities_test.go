package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/adapter/http/handlers"
	"studyplanner/internal/adapter/http/middleware"
	"studyplanner/internal/core/domain"
	"studyplanner/pkg/apierrors"
	"studyplanner/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type activityServiceMock struct {
	mock.Mock
}

func (m *activityServiceMock) CreateActivity(ctx context.Context, userID string, input domain.CreateActivityInput) (domain.Activity, error) {
	args := m.Called(ctx, userID, input)

	var activity domain.Activity
	if value := args.Get(0); value != nil {
		activity = value.(domain.Activity)
	}
	return activity, args.Error(1)
}

func (m *activityServiceMock) ListUserActivities(ctx context.Context, userID string) ([]domain.Activity, error) {
	args := m.Called(ctx, userID)

	var activities []domain.Activity
	if value := args.Get(0); value != nil {
		activities = value.([]domain.Activity)
	}
	return activities, args.Error(1)
}

func (m *activityServiceMock) GetActivity(ctx context.Context, id string) (domain.Activity, error) {
	args := m.Called(ctx, id)

	var activity domain.Activity
	if value := args.Get(0); value != nil {
		activity = value.(domain.Activity)
	}
	return activity, args.Error(1)
}

func (m *activityServiceMock) UpdateActivity(ctx context.Context, id string, input domain.UpdateActivityInput) (domain.Activity, error) {
	args := m.Called(ctx, id, input)

	var activity domain.Activity
	if value := args.Get(0); value != nil {
		activity = value.(domain.Activity)
	}
	return activity, args.Error(1)
}

func (m *activityServiceMock) DeleteActivity(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newActivityRouter(serviceMock *activityServiceMock) *gin.Engine {
	handler := handlers.NewActivityHandler(serviceMock)

	router := gin.New()
	router.POST("/api/users/:id/activities", middleware.LanguageMiddleware(), handler.CreateActivity)
	router.GET("/api/users/:id/activities", middleware.LanguageMiddleware(), handler.ListUserActivities)
	router.GET("/api/activities/:id", middleware.LanguageMiddleware(), handler.GetActivity)
	router.PUT("/api/activities/:id", middleware.LanguageMiddleware(), handler.UpdateActivity)
	router.DELETE("/api/activities/:id", middleware.LanguageMiddleware(), handler.DeleteActivity)
	return router
}

func TestActivityHandler_CreateActivity_WithRecurrence(t *testing.T) {
	start := time.Date(2026, 3, 4, 16, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 4, 17, 30, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	serviceMock := new(activityServiceMock)
	serviceMock.On("CreateActivity", mock.Anything, "user-1", domain.CreateActivityInput{
		Title:         "Basketball practice",
		ActivityType:  domain.ActivityPractice,
		StartDatetime: start,
		EndDatetime:   end,
		Recurrence: &domain.RecurrencePattern{
			Frequency:  domain.RecurrenceWeekly,
			Interval:   1,
			DaysOfWeek: []int{1, 3},
		},
	}).Return(
		domain.Activity{
			ID:            "activity-1",
			UserID:        "user-1",
			Title:         "Basketball practice",
			ActivityType:  domain.ActivityPractice,
			StartDatetime: start,
			EndDatetime:   end,
			Recurrence: &domain.RecurrencePattern{
				Frequency:  domain.RecurrenceWeekly,
				Interval:   1,
				DaysOfWeek: []int{1, 3},
			},
			Color:     domain.DefaultActivityColor,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		nil,
	).Once()

	router := newActivityRouter(serviceMock)

	body := `{
		"title": "Basketball practice",
		"activity_type": "practice",
		"start_datetime": "2026-03-04T16:00:00Z",
		"end_datetime": "2026-03-04T17:30:00Z",
		"recurrence": {"frequency": "weekly", "days_of_week": [1, 3]}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/user-1/activities", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ActivityItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "activity-1", got.ID)
	require.Equal(t, "practice", got.ActivityType)
	require.Equal(t, "2026-03-04T16:00:00Z", got.StartDatetime)
	require.Equal(t, domain.DefaultActivityColor, got.Color)
	require.NotNil(t, got.Recurrence)
	require.Equal(t, "weekly", got.Recurrence.Frequency)
	require.Equal(t, 1, got.Recurrence.Interval)
	require.Equal(t, []int{1, 3}, got.Recurrence.DaysOfWeek)
	serviceMock.AssertExpectations(t)
}

func TestActivityHandler_CreateActivity_UnknownType(t *testing.T) {
	serviceMock := new(activityServiceMock)
	router := newActivityRouter(serviceMock)

	body := `{"title": "Chess", "activity_type": "hobby", "start_datetime": "2026-03-04T16:00:00Z", "end_datetime": "2026-03-04T17:30:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/user-1/activities", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Validation failed", got.ErrDetails.Message)
	require.Equal(t, "oneof", got.ErrDetails.Fields["activity_type"])
	serviceMock.AssertNotCalled(t, "CreateActivity")
}

func TestActivityHandler_GetActivity_NotFound(t *testing.T) {
	serviceMock := new(activityServiceMock)
	serviceMock.On("GetActivity", mock.Anything, "missing-id").Return(nil, domain.ErrActivityNotFound).Once()

	router := newActivityRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/activities/missing-id", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Activity not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestActivityHandler_UpdateActivity_Reschedule(t *testing.T) {
	start := time.Date(2026, 3, 5, 16, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 17, 30, 0, 0, time.UTC)

	serviceMock := new(activityServiceMock)
	serviceMock.On("UpdateActivity", mock.Anything, "activity-1", domain.UpdateActivityInput{
		StartDatetime: &start,
		EndDatetime:   &end,
	}).Return(
		domain.Activity{
			ID:            "activity-1",
			UserID:        "user-1",
			Title:         "Basketball practice",
			ActivityType:  domain.ActivityPractice,
			StartDatetime: start,
			EndDatetime:   end,
			Color:         domain.DefaultActivityColor,
			CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
		nil,
	).Once()

	router := newActivityRouter(serviceMock)

	body := `{"start_datetime": "2026-03-05T16:00:00Z", "end_datetime": "2026-03-05T17:30:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/api/activities/activity-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ActivityItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "2026-03-05T16:00:00Z", got.StartDatetime)
	require.Equal(t, "2026-03-05T17:30:00Z", got.EndDatetime)
	serviceMock.AssertExpectations(t)
}

func TestActivityHandler_DeleteActivity_Success(t *testing.T) {
	serviceMock := new(activityServiceMock)
	serviceMock.On("DeleteActivity", mock.Anything, "activity-1").Return(nil).Once()

	router := newActivityRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/activities/activity-1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message": "Activity deleted successfully"}`, rec.Body.String())
	serviceMock.AssertExpectations(t)
}

func TestActivityHandler_DeleteActivity_NotFound(t *testing.T) {
	serviceMock := new(activityServiceMock)
	serviceMock.On("DeleteActivity", mock.Anything, "missing-id").Return(domain.ErrActivityNotFound).Once()

	router := newActivityRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/activities/missing-id", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Activity not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
