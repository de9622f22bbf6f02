package ports

import (
	"context"

	"studyplanner/internal/core/domain"
)

type UserRepository interface {
	Insert(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, input domain.UpdateUserInput) error
}

type UserService interface {
	CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, input domain.UpdateUserInput) (domain.User, error)
}
