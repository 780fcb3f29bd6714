package memory

import (
	"context"
	"fmt"

	"mergington-activities-api/internal/entities"
)

// ListActivities returns a snapshot of all activities in seed order.
func (s *Store) ListActivities(_ context.Context) ([]entities.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]entities.Activity, 0, len(s.order))
	for _, name := range s.order {
		res = append(res, snapshot(s.activities[name]))
	}
	return res, nil
}

// Signup appends email to the activity's participant list.
func (s *Store) Signup(_ context.Context, activityName, email string) (*entities.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[activityName]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}
	if a.IsRegistered(email) {
		return nil, fmt.Errorf("%w: %s in %s", entities.ErrAlreadyRegistered, email, activityName)
	}

	a.Participants = append(a.Participants, email)
	s.log.Infow("signed up", "activity", activityName, "email", email, "participants", len(a.Participants))

	snap := snapshot(a)
	return &snap, nil
}

// Unregister removes email from the activity's participant list,
// keeping the remaining entries in order.
func (s *Store) Unregister(_ context.Context, activityName, email string) (*entities.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[activityName]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}

	idx := -1
	for i, p := range a.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s in %s", entities.ErrNotRegistered, email, activityName)
	}

	a.Participants = append(a.Participants[:idx], a.Participants[idx+1:]...)
	s.log.Infow("unregistered", "activity", activityName, "email", email, "participants", len(a.Participants))

	snap := snapshot(a)
	return &snap, nil
}

// snapshot copies an activity so callers never alias store-owned slices.
func snapshot(a *entities.Activity) entities.Activity {
	out := *a
	out.Participants = append([]string(nil), a.Participants...)
	return out
}
