// Package repository contains repository interfaces for roster backends.
package repository

import (
	"context"

	"mergington-activities-api/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// RosterInterface exposes roster operations.
type RosterInterface interface {
	ListActivities(ctx context.Context) ([]entities.Activity, error)
	Signup(ctx context.Context, activityName, email string) (*entities.Activity, error)
	Unregister(ctx context.Context, activityName, email string) (*entities.Activity, error)
}
