package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Stats summarizes commit activity over a trailing window.
type Stats struct {
	Days       int
	Commits    int
	Milestones int
}

// Average yields milestones per commit, 0 for an empty window.
func (s Stats) Average() float64 {
	if s.Commits == 0 {
		return 0
	}
	return float64(s.Milestones) / float64(s.Commits)
}

// GetStats counts commits and milestones recorded within the last
// days days.
func (r *Repo) GetStats(ctx context.Context, days int) (Stats, error) {
	commits, err := r.GetCommits(ctx)
	if err != nil {
		return Stats{}, err
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	stats := Stats{Days: days}
	for _, c := range commits {
		if c.Timestamp.Before(cutoff) {
			continue
		}
		stats.Commits++
		stats.Milestones += len(c.Milestones)
	}
	r.l.Debug("computed stats",
		zap.Int("days", days),
		zap.Int("commits", stats.Commits),
		zap.Int("milestones", stats.Milestones))
	return stats, nil
}
