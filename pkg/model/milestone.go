package model

import (
	"encoding/json"
	"time"
)

// Milestone is a single progress note: a message, the time it was
// recorded, and optional tags.
//
// Milestones are value types: once staged they are never edited in
// place, only replaced wholesale with the document containing them.
type Milestone struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Tags      []string  `json:"tags"`
}

// NewMilestone builds a milestone for message, stamped now unless
// overridden by options.
func NewMilestone(message string, opts ...MilestoneOption) Milestone {
	m := Milestone{
		Message:   message,
		Timestamp: GetTimeStamp(),
		Tags:      []string{},
	}
	for _, apply := range opts {
		apply(&m)
	}
	return m
}

// UnmarshalJSON decodes a milestone record, rejecting records without a
// message or timestamp. Absent tags decode as an empty list.
func (m *Milestone) UnmarshalJSON(data []byte) error {
	var record struct {
		Message   *string    `json:"message"`
		Timestamp *time.Time `json:"timestamp"`
		Tags      []string   `json:"tags"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	if record.Message == nil {
		return ErrMissingMessage
	}
	if record.Timestamp == nil {
		return ErrMissingTimestamp
	}
	m.Message = *record.Message
	m.Timestamp = *record.Timestamp
	m.Tags = record.Tags
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return nil
}

// GetTimeStamp yields the creation time for new milestones and commits.
func GetTimeStamp() time.Time {
	return time.Now()
}

// ValidateMilestone verifies that a milestone carries a message.
func ValidateMilestone(m Milestone) error {
	if m.Message == "" {
		return ErrMissingMessage
	}
	return nil
}
