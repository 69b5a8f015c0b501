package model

import "github.com/oneconcern/gyt/pkg/errors"

var (
	// ErrMissingMessage indicates a milestone or commit record without a message field
	ErrMissingMessage = errors.New("record is missing a message")

	// ErrMissingTimestamp indicates a milestone or commit record without a timestamp field
	ErrMissingTimestamp = errors.New("record is missing a timestamp")

	// ErrNoMilestones indicates a commit built without any milestone
	ErrNoMilestones = errors.New("commit carries no milestones")
)
