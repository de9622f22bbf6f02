package ports

import (
	"context"

	"studyplanner/internal/core/domain"
)

type SessionRepository interface {
	Insert(ctx context.Context, session domain.Session) error
	GetByToken(ctx context.Context, token string) (domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// AuthService backs the web variant's cookie login. Login matches on email
// alone; the submitted password is accepted but never verified against
// anything (there is no stored credential).
type AuthService interface {
	Login(ctx context.Context, email string) (domain.User, domain.Session, error)
	Signup(ctx context.Context, input domain.CreateUserInput) (domain.User, domain.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (domain.User, error)
}
