package usecase

import (
	"context"

	"mergington-activities-api/internal/entities"
)

// RosterUsecaseInterface abstracts roster operations for the delivery layer.
type RosterUsecaseInterface interface {
	ListActivities(ctx context.Context) ([]entities.Activity, error)
	Signup(ctx context.Context, activityName, email string) (*entities.Activity, error)
	Unregister(ctx context.Context, activityName, email string) (*entities.Activity, error)
}
