// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"mergington-activities-api/internal/api"
	"mergington-activities-api/internal/entities"
)

// ToAPIActivity maps entities.Activity to its transport view.
func ToAPIActivity(a entities.Activity) api.ActivityView {
	participants := a.Participants
	if participants == nil {
		participants = []string{}
	}
	return api.ActivityView{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// ToAPIActivityMap maps an ordered activity slice to the listing object.
func ToAPIActivityMap(list []entities.Activity) api.ActivityMap {
	m := api.ActivityMap{
		Names:      make([]string, 0, len(list)),
		Activities: make(map[string]api.ActivityView, len(list)),
	}
	for _, a := range list {
		m.Names = append(m.Names, a.Name)
		m.Activities[a.Name] = ToAPIActivity(a)
	}
	return m
}
