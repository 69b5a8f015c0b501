package model

import "time"

// MilestoneOption modifies a milestone at construction time.
type MilestoneOption func(*Milestone)

// MilestoneTags sets the tags on a new milestone.
func MilestoneTags(tags ...string) MilestoneOption {
	return func(m *Milestone) {
		if tags == nil {
			tags = []string{}
		}
		m.Tags = tags
	}
}

// MilestoneTimestamp overrides the creation time of a new milestone.
func MilestoneTimestamp(t time.Time) MilestoneOption {
	return func(m *Milestone) {
		m.Timestamp = t
	}
}
