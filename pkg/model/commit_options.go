package model

import "time"

// CommitOption modifies a commit at construction time.
type CommitOption func(*Commit)

// CommitTimestamp overrides the creation time of a new commit.
func CommitTimestamp(t time.Time) CommitOption {
	return func(c *Commit) {
		c.Timestamp = t
	}
}
