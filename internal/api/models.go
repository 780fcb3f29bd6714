// Package api defines transport models for the activities HTTP surface.
package api

import (
	"bytes"
	"encoding/json"
)

// ActivityView is the wire representation of a single activity.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityMap serializes as a JSON object keyed by activity name,
// emitting keys in roster order instead of encoding/json's sorted order.
type ActivityMap struct {
	Names      []string
	Activities map[string]ActivityView
}

// MarshalJSON implements json.Marshaler.
func (m ActivityMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.Names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.Activities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MessageResponse confirms a successful signup or unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries the failure detail for 4xx/5xx responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
