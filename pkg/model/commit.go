package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

const (
	// CommitHashLength is the number of hex characters kept from the digest.
	CommitHashLength = 8

	// TimeFormat renders timestamps when deriving a commit hash. It matches
	// the JSON rendering of time.Time, so hashes are stable across a
	// save/load round trip.
	TimeFormat = time.RFC3339Nano
)

// Commit bundles the milestones staged at commit time under a message.
//
// CommitHash stays empty until the commit is persisted, at which point
// it is derived once from the timestamp and message. It is a display
// fingerprint only: nothing looks commits up by hash.
type Commit struct {
	Message    string      `json:"message"`
	Milestones []Milestone `json:"milestones"`
	Timestamp  time.Time   `json:"timestamp"`
	CommitHash string      `json:"commit_hash"`
}

// NewCommit builds an unpersisted commit from the given milestones.
func NewCommit(message string, milestones []Milestone, opts ...CommitOption) Commit {
	c := Commit{
		Message:    message,
		Milestones: milestones,
		Timestamp:  GetTimeStamp(),
	}
	for _, apply := range opts {
		apply(&c)
	}
	return c
}

// ValidateCommit verifies the construction contract: at least one milestone.
func ValidateCommit(c Commit) error {
	if len(c.Milestones) == 0 {
		return ErrNoMilestones
	}
	return nil
}

// CommitFingerprint derives the display hash assigned at persistence
// time: the first 8 lowercase hex characters of the SHA-256 digest over
// the timestamp rendering directly followed by the message.
func CommitFingerprint(timestamp time.Time, message string) string {
	digest := sha256.Sum256([]byte(timestamp.Format(TimeFormat) + message))
	return hex.EncodeToString(digest[:])[:CommitHashLength]
}

type commitRecord struct {
	Message    string      `json:"message"`
	Milestones []Milestone `json:"milestones"`
	Timestamp  time.Time   `json:"timestamp"`
	CommitHash *string     `json:"commit_hash"`
}

// MarshalJSON encodes the commit record, rendering an unassigned hash
// as null.
func (c Commit) MarshalJSON() ([]byte, error) {
	record := commitRecord{
		Message:    c.Message,
		Milestones: c.Milestones,
		Timestamp:  c.Timestamp,
	}
	if record.Milestones == nil {
		record.Milestones = []Milestone{}
	}
	if c.CommitHash != "" {
		record.CommitHash = &c.CommitHash
	}
	return json.Marshal(record)
}

// UnmarshalJSON decodes a commit record, rejecting records missing
// their message, timestamp or milestone list. Milestone decoding
// failures propagate.
func (c *Commit) UnmarshalJSON(data []byte) error {
	var record struct {
		Message    *string     `json:"message"`
		Milestones []Milestone `json:"milestones"`
		Timestamp  *time.Time  `json:"timestamp"`
		CommitHash *string     `json:"commit_hash"`
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
	if record.Milestones == nil {
		return ErrNoMilestones
	}
	c.Message = *record.Message
	c.Milestones = record.Milestones
	c.Timestamp = *record.Timestamp
	if record.CommitHash != nil {
		c.CommitHash = *record.CommitHash
	} else {
		c.CommitHash = ""
	}
	return nil
}
