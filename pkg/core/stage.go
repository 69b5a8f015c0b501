package core

import (
	"context"

	"github.com/oneconcern/gyt/pkg/model"
	"github.com/oneconcern/gyt/pkg/storage"
	"go.uber.org/zap"
)

// GetStagedMilestones yields the staging area in stored order. An
// absent staging document reads as empty.
func (r *Repo) GetStagedMilestones(ctx context.Context) ([]model.Milestone, error) {
	staged := make([]model.Milestone, 0)
	if _, err := r.loadDocument(ctx, model.GetPathToStaging(), &staged); err != nil {
		return nil, err
	}
	return staged, nil
}

// AddMilestone appends a milestone to the staging area and rewrites
// the staging document in full.
func (r *Repo) AddMilestone(ctx context.Context, m model.Milestone) error {
	if err := model.ValidateMilestone(m); err != nil {
		return err
	}
	staged, err := r.GetStagedMilestones(ctx)
	if err != nil {
		return err
	}
	staged = append(staged, m)
	if err = r.saveDocument(ctx, model.GetPathToStaging(), staged, storage.OverWrite); err != nil {
		return err
	}
	r.l.Info("staged milestone", zap.String("message", m.Message), zap.Int("staged", len(staged)))
	return nil
}

// ClearStaging rewrites the staging document as an empty list.
func (r *Repo) ClearStaging(ctx context.Context) error {
	return r.saveDocument(ctx, model.GetPathToStaging(), []model.Milestone{}, storage.OverWrite)
}
