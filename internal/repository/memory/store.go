// Package memory implements the roster repository in process memory.
package memory

import (
	"context"
	"sync"

	"mergington-activities-api/config"
	"mergington-activities-api/internal/entities"

	"go.uber.org/zap"
)

// Store keeps the activity roster behind a single mutex.
// Map access goes through the order slice so listings keep seed order.
type Store struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.RosterConfig

	mu         sync.RWMutex
	activities map[string]*entities.Activity
	order      []string
}

// New creates an in-memory repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Store {
	return &Store{
		baseCtx: ctx,
		log:     log.Named("repo.memory"),
		cfg:     cfg.Roster,
	}
}

// OnStart seeds the roster from the configured seed file or the built-in catalog.
func (s *Store) OnStart(_ context.Context) error {
	seed, err := s.loadSeed()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = make(map[string]*entities.Activity, len(seed))
	s.order = make([]string, 0, len(seed))
	for _, a := range seed {
		a := a
		a.Participants = append([]string(nil), a.Participants...)
		s.activities[a.Name] = &a
		s.order = append(s.order, a.Name)
	}

	s.log.Infow("roster ready", "activities", len(s.order))
	return nil
}

// OnStop discards nothing; roster state is process-lifetime only.
func (s *Store) OnStop(_ context.Context) error {
	return nil
}
