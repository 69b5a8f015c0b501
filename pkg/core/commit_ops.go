package core

import (
	"context"

	"github.com/oneconcern/gyt/pkg/model"
	"github.com/oneconcern/gyt/pkg/storage"
	"go.uber.org/zap"
)

// GetCommits yields the commit history in insertion order, oldest
// first. An absent commits document reads as empty.
func (r *Repo) GetCommits(ctx context.Context) ([]model.Commit, error) {
	commits := make([]model.Commit, 0)
	if _, err := r.loadDocument(ctx, model.GetPathToCommits(), &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// AddCommit stamps the commit with its hash, appends it to the history
// and rewrites the commits document in full. The stamped commit is
// returned.
//
// The hash is assigned exactly once, here: callers hand in commits
// with an empty hash.
func (r *Repo) AddCommit(ctx context.Context, c model.Commit) (model.Commit, error) {
	if err := model.ValidateCommit(c); err != nil {
		return model.Commit{}, err
	}
	commits, err := r.GetCommits(ctx)
	if err != nil {
		return model.Commit{}, err
	}

	c.CommitHash = model.CommitFingerprint(c.Timestamp, c.Message)
	commits = append(commits, c)

	if err = r.saveDocument(ctx, model.GetPathToCommits(), commits, storage.OverWrite); err != nil {
		return model.Commit{}, err
	}
	r.l.Info("recorded commit",
		zap.String("hash", c.CommitHash),
		zap.Int("milestones", len(c.Milestones)))
	return c, nil
}

// CommitStaged moves every staged milestone into a new commit and
// clears the staging area. It fails with ErrEmptyStaging when nothing
// is staged, without touching any document.
func (r *Repo) CommitStaged(ctx context.Context, message string) (model.Commit, error) {
	staged, err := r.GetStagedMilestones(ctx)
	if err != nil {
		return model.Commit{}, err
	}
	if len(staged) == 0 {
		return model.Commit{}, ErrEmptyStaging
	}
	c, err := r.AddCommit(ctx, model.NewCommit(message, staged))
	if err != nil {
		return model.Commit{}, err
	}
	if err = r.ClearStaging(ctx); err != nil {
		return model.Commit{}, err
	}
	return c, nil
}

// Log yields up to limit commits, most recent first. A non-positive
// limit yields the full history.
func (r *Repo) Log(ctx context.Context, limit int) ([]model.Commit, error) {
	commits, err := r.GetCommits(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(commits) > limit {
		commits = commits[len(commits)-limit:]
	}
	reversed := make([]model.Commit, 0, len(commits))
	for i := len(commits) - 1; i >= 0; i-- {
		reversed = append(reversed, commits[i])
	}
	return reversed, nil
}
