// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"mergington-activities-api/config"
	"mergington-activities-api/internal/repository/memory"

	"go.uber.org/zap"
)

// Repository aggregates all roster store interfaces.
type Repository interface {
	LifecycleInterface
	RosterInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
