// Package entities contains core business entities.
package entities

// Activity is a domain model of a single extracurricular offering.
// Participants keeps signup order and never contains duplicates.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// IsRegistered reports whether email is on the participant list.
func (a Activity) IsRegistered(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
