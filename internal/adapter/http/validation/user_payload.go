package validation

import (
	"errors"
	"strings"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

var ErrInvalidUserPayload = errors.New("invalid user payload")

func BuildCreateUserInput(req dto.CreateUserRequest) (domain.CreateUserInput, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return domain.CreateUserInput{}, ErrInvalidUserPayload
	}

	return domain.CreateUserInput{
		ID:        req.ID,
		Name:      name,
		Email:     email,
		YearLevel: req.YearLevel,
		Subjects:  req.Subjects,
	}, nil
}

func BuildUpdateUserInput(req dto.UpdateUserRequest) (domain.UpdateUserInput, error) {
	input := domain.UpdateUserInput{
		YearLevel: req.YearLevel,
		Subjects:  req.Subjects,
	}

	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateUserInput{}, ErrInvalidUserPayload
		}
		input.Name = &value
	}

	if req.Email != nil {
		value := strings.TrimSpace(*req.Email)
		if value == "" {
			return domain.UpdateUserInput{}, ErrInvalidUserPayload
		}
		input.Email = &value
	}

	if req.Theme != nil {
		value := domain.Theme(*req.Theme)
		input.Theme = &value
	}

	if req.DefaultView != nil {
		value := domain.ViewType(*req.DefaultView)
		input.DefaultView = &value
	}

	return input, nil
}
