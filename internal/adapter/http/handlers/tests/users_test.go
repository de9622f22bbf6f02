package tests

import (
	"context"
	"encoding/json"
	"errors"
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

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	args := m.Called(ctx, input)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) UpdateUser(ctx context.Context, id string, input domain.UpdateUserInput) (domain.User, error) {
	args := m.Called(ctx, id, input)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func newUserRouter(serviceMock *userServiceMock) *gin.Engine {
	handler := handlers.NewUserHandler(serviceMock)

	router := gin.New()
	router.POST("/api/users", middleware.LanguageMiddleware(), handler.CreateUser)
	router.GET("/api/users", middleware.LanguageMiddleware(), handler.ListUsers)
	router.GET("/api/users/:id", middleware.LanguageMiddleware(), handler.GetUser)
	router.PUT("/api/users/:id", middleware.LanguageMiddleware(), handler.UpdateUser)
	return router
}

func TestUserHandler_CreateUser_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	serviceMock := new(userServiceMock)
	serviceMock.On("CreateUser", mock.Anything, domain.CreateUserInput{
		Name:      "Maya Chen",
		Email:     "maya@school.edu",
		YearLevel: 10,
		Subjects:  []string{"Mathematics", "Physics"},
	}).Return(
		domain.User{
			ID:          "6f2c7e0a-1b6d-4f7e-9f3a-0d8a4c1e5b2f",
			Name:        "Maya Chen",
			Email:       "maya@school.edu",
			YearLevel:   10,
			Theme:       domain.ThemeLight,
			DefaultView: domain.ViewMonth,
			Subjects:    []string{"Mathematics", "Physics"},
			CreatedAt:   createdAt,
		},
		nil,
	).Once()

	router := newUserRouter(serviceMock)

	body := `{"name": "Maya Chen", "email": "maya@school.edu", "year_level": 10, "subjects": ["Mathematics", "Physics"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "6f2c7e0a-1b6d-4f7e-9f3a-0d8a4c1e5b2f", got.ID)
	require.Equal(t, "Maya Chen", got.Name)
	require.Equal(t, "light", got.Theme)
	require.Equal(t, "month", got.DefaultView)
	require.Equal(t, []string{"Mathematics", "Physics"}, got.Subjects)
	require.Equal(t, "2026-03-02T08:00:00Z", got.CreatedAt)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_CreateUser_YearLevelOutOfRange(t *testing.T) {
	serviceMock := new(userServiceMock)
	router := newUserRouter(serviceMock)

	body := `{"name": "Maya Chen", "email": "maya@school.edu", "year_level": 8}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusUnprocessableEntity, got.ErrDetails.Code)
	require.Equal(t, "Validation failed", got.ErrDetails.Message)
	require.Equal(t, "gte", got.ErrDetails.Fields["year_level"])
	serviceMock.AssertNotCalled(t, "CreateUser")
}

func TestUserHandler_CreateUser_MalformedBody(t *testing.T) {
	serviceMock := new(userServiceMock)
	router := newUserRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name": `))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid user payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "CreateUser")
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("GetUser", mock.Anything, "missing-id").Return(nil, domain.ErrUserNotFound).Once()

	router := newUserRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing-id", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusNotFound, got.ErrDetails.Code)
	require.Equal(t, "User not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_GetUser_NotFound_Fr(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("GetUser", mock.Anything, "missing-id").Return(nil, domain.ErrUserNotFound).Once()

	router := newUserRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing-id", nil)
	req.Header.Set("Accept-Language", translator.LanguageFr)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Utilisateur introuvable", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_ListUsers_Error(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("ListUsers", mock.Anything).Return(nil, errors.New("db is down")).Once()

	router := newUserRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Error fetching the users", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_UpdateUser_PartialPatch(t *testing.T) {
	theme := domain.ThemeDark

	serviceMock := new(userServiceMock)
	serviceMock.On("UpdateUser", mock.Anything, "user-1", domain.UpdateUserInput{Theme: &theme}).Return(
		domain.User{
			ID:          "user-1",
			Name:        "Maya Chen",
			Email:       "maya@school.edu",
			YearLevel:   10,
			Theme:       domain.ThemeDark,
			DefaultView: domain.ViewMonth,
			Subjects:    []string{},
			CreatedAt:   time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		},
		nil,
	).Once()

	router := newUserRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPut, "/api/users/user-1", strings.NewReader(`{"theme": "dark"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "dark", got.Theme)
	require.Equal(t, "Maya Chen", got.Name)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_UpdateUser_NotFound(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("UpdateUser", mock.Anything, "missing-id", mock.Anything).Return(nil, domain.ErrUserNotFound).Once()

	router := newUserRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPut, "/api/users/missing-id", strings.NewReader(`{"name": "Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "User not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
