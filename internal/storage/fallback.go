package storage

import (
	"context"

	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/model"
)

// Fallback fronts a remote tier with a local one. Reads degrade to the
// secondary tier instead of failing; writes surface remote errors so a
// configured database never silently loses a submission.
type Fallback struct {
	primary   Store
	secondary Store
}

func NewFallback(primary, secondary Store) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

func (f *Fallback) Save(ctx context.Context, submission model.Submission) error {
	return f.primary.Save(ctx, submission)
}

func (f *Fallback) UpdatePlan(ctx context.Context, id string, plan *model.AdmissionPlan) error {
	return f.primary.UpdatePlan(ctx, id, plan)
}

func (f *Fallback) GetAll(ctx context.Context) ([]model.Submission, error) {
	subs, err := f.primary.GetAll(ctx)
	if err != nil {
		common.Logger().Warn("storage: primary read failed, degrading", "error", err)
		return f.secondary.GetAll(ctx)
	}
	return subs, nil
}

func (f *Fallback) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	sub, err := f.primary.GetByID(ctx, id)
	if err != nil {
		common.Logger().Warn("storage: primary read failed, degrading", "error", err)
		return f.secondary.GetByID(ctx, id)
	}
	return sub, nil
}

func (f *Fallback) GetByEmail(ctx context.Context, email string) ([]model.Submission, error) {
	subs, err := f.primary.GetByEmail(ctx, email)
	if err != nil {
		common.Logger().Warn("storage: primary read failed, degrading", "error", err)
		return f.secondary.GetByEmail(ctx, email)
	}
	return subs, nil
}
