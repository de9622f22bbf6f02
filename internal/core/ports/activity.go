package ports

import (
	"context"
	"time"

	"studyplanner/internal/core/domain"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity domain.Activity) error
	ListByUser(ctx context.Context, userID string) ([]domain.Activity, error)
	ListStartingBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.Activity, error)
	GetByID(ctx context.Context, id string) (domain.Activity, error)
	Update(ctx context.Context, id string, patch domain.ActivityPatch) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type ActivityService interface {
	CreateActivity(ctx context.Context, userID string, input domain.CreateActivityInput) (domain.Activity, error)
	ListUserActivities(ctx context.Context, userID string) ([]domain.Activity, error)
	GetActivity(ctx context.Context, id string) (domain.Activity, error)
	UpdateActivity(ctx context.Context, id string, input domain.UpdateActivityInput) (domain.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
}
