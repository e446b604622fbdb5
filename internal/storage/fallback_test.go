package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/studyway/studyway/internal/model"
)

// failingStore simulates an unreachable primary tier.
type failingStore struct {
	err       error
	saveCalls int
}

func (f *failingStore) Save(ctx context.Context, submission model.Submission) error {
	f.saveCalls++
	return f.err
}

func (f *failingStore) GetAll(ctx context.Context) ([]model.Submission, error) {
	return nil, f.err
}

func (f *failingStore) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	return nil, f.err
}

func (f *failingStore) GetByEmail(ctx context.Context, email string) ([]model.Submission, error) {
	return nil, f.err
}

func (f *failingStore) UpdatePlan(ctx context.Context, id string, plan *model.AdmissionPlan) error {
	return f.err
}

func TestFallbackReadsDegradeToSecondary(t *testing.T) {
	ctx := context.Background()
	secondary := NewMemory()
	if err := secondary.Save(ctx, sampleSubmission("id-1", "a@example.com")); err != nil {
		t.Fatalf("seed secondary: %v", err)
	}
	store := NewFallback(&failingStore{err: errors.New("connection refused")}, secondary)

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all should degrade, got error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected secondary data, got %d submissions", len(all))
	}

	sub, err := store.GetByID(ctx, "id-1")
	if err != nil || sub == nil {
		t.Fatalf("get by id should degrade: sub=%v err=%v", sub, err)
	}

	subs, err := store.GetByEmail(ctx, "a@example.com")
	if err != nil || len(subs) != 1 {
		t.Fatalf("get by email should degrade: subs=%v err=%v", subs, err)
	}
}

func TestFallbackReadsPreferPrimary(t *testing.T) {
	ctx := context.Background()
	primary := NewMemory()
	secondary := NewMemory()
	if err := primary.Save(ctx, sampleSubmission("id-1", "a@example.com")); err != nil {
		t.Fatalf("seed primary: %v", err)
	}
	store := NewFallback(primary, secondary)
	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected primary data, got %d", len(all))
	}
}

func TestFallbackWritesSurfacePrimaryErrors(t *testing.T) {
	ctx := context.Background()
	primary := &failingStore{err: errors.New("write failed")}
	store := NewFallback(primary, NewMemory())

	if err := store.Save(ctx, sampleSubmission("id-1", "a@example.com")); err == nil {
		t.Fatalf("save must surface the primary error")
	}
	if primary.saveCalls != 1 {
		t.Fatalf("expected save to reach primary once, got %d", primary.saveCalls)
	}
	if err := store.UpdatePlan(ctx, "id-1", &model.AdmissionPlan{}); err == nil {
		t.Fatalf("update plan must surface the primary error")
	}
}
