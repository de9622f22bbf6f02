package ports

import (
	"context"

	"studyplanner/internal/core/domain"
)

type DashboardService interface {
	Calendar(ctx context.Context, userID string, window domain.CalendarWindow) (domain.CalendarData, error)
	Stats(ctx context.Context, userID string) (domain.TaskStats, error)
}
