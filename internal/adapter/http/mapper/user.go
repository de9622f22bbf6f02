package mapper

import (
	"time"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	subjects := user.Subjects
	if subjects == nil {
		subjects = []string{}
	}

	return dto.UserItem{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		YearLevel:   user.YearLevel,
		Theme:       string(user.Theme),
		DefaultView: string(user.DefaultView),
		Subjects:    subjects,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}
