// Package domain contains application Usecases orchestrating roster logic.
package domain

import (
	"context"
	"fmt"

	"mergington-activities-api/internal/entities"
)

// ListActivities returns the full roster snapshot.
func (u *Usecase) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListActivities(ctx)
}

// Signup adds email to the named activity's participant list.
func (u *Usecase) Signup(ctx context.Context, activityName, email string) (*entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if activityName == "" {
		u.log.Errorw("failed to sign up: missing activity name")
		return nil, fmt.Errorf("%w: activity name is required", entities.ErrInvalidArgument)
	}
	if email == "" {
		u.log.Errorw("failed to sign up: missing email", "activity", activityName)
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	return u.repo.Signup(ctx, activityName, email)
}

// Unregister removes email from the named activity's participant list.
func (u *Usecase) Unregister(ctx context.Context, activityName, email string) (*entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if activityName == "" {
		u.log.Errorw("failed to unregister: missing activity name")
		return nil, fmt.Errorf("%w: activity name is required", entities.ErrInvalidArgument)
	}
	if email == "" {
		u.log.Errorw("failed to unregister: missing email", "activity", activityName)
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	return u.repo.Unregister(ctx, activityName, email)
}
