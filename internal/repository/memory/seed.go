package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"mergington-activities-api/internal/entities"
)

type seedRecord struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// loadSeed reads the catalog from cfg.SeedFile when set, otherwise
// returns the built-in Mergington dataset.
func (s *Store) loadSeed() ([]entities.Activity, error) {
	if s.cfg.SeedFile == "" {
		return defaultSeed(), nil
	}

	data, err := os.ReadFile(s.cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var records []seedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	res := make([]entities.Activity, 0, len(records))
	for _, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("seed file: activity with empty name")
		}
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("seed file: duplicate activity %q", r.Name)
		}
		if r.MaxParticipants <= 0 {
			return nil, fmt.Errorf("seed file: activity %q needs positive max_participants", r.Name)
		}
		seen[r.Name] = struct{}{}
		res = append(res, entities.Activity{
			Name:            r.Name,
			Description:     r.Description,
			Schedule:        r.Schedule,
			MaxParticipants: r.MaxParticipants,
			Participants:    r.Participants,
		})
	}

	s.log.Infow("seed file loaded", "path", s.cfg.SeedFile, "activities", len(res))
	return res, nil
}

func defaultSeed() []entities.Activity {
	return []entities.Activity{
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in local leagues",
			Schedule:        "Wednesdays and Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Practice basketball skills and play friendly matches",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore painting, drawing, and other visual arts",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ava@mergington.edu"},
		},
		{
			Name:            "Drama Society",
			Description:     "Participate in theater productions and acting workshops",
			Schedule:        "Mondays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"noah@mergington.edu"},
		},
		{
			Name:            "Math Olympiad",
			Description:     "Prepare for math competitions and solve challenging problems",
			Schedule:        "Fridays, 2:00 PM - 3:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"ethan@mergington.edu"},
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
