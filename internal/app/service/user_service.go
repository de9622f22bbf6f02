package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	if input.YearLevel < domain.MinYearLevel || input.YearLevel > domain.MaxYearLevel {
		return domain.User{}, domain.ErrYearLevelRange
	}

	id := uuid.NewString()
	if input.ID != nil && *input.ID != "" {
		id = *input.ID
	}

	subjects := input.Subjects
	if subjects == nil {
		subjects = []string{}
	}

	user := domain.User{
		ID:          id,
		Name:        input.Name,
		Email:       input.Email,
		YearLevel:   input.YearLevel,
		Theme:       domain.ThemeLight,
		DefaultView: domain.ViewMonth,
		Subjects:    subjects,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.userRepository.Insert(ctx, user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.userRepository.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.List(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, input domain.UpdateUserInput) (domain.User, error) {
	if input.YearLevel != nil && (*input.YearLevel < domain.MinYearLevel || *input.YearLevel > domain.MaxYearLevel) {
		return domain.User{}, domain.ErrYearLevelRange
	}

	if hasUserUpdateFields(input) {
		if err := s.userRepository.Update(ctx, id, input); err != nil {
			return domain.User{}, err
		}
	}

	return s.userRepository.GetByID(ctx, id)
}

func hasUserUpdateFields(input domain.UpdateUserInput) bool {
	return input.Name != nil ||
		input.Email != nil ||
		input.YearLevel != nil ||
		input.Theme != nil ||
		input.DefaultView != nil ||
		input.Subjects != nil
}

var _ ports.UserService = (*UserService)(nil)
