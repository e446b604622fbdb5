package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/model"
)

// File persists submissions as a single JSON array on local disk with
// read-modify-write on every mutation. The in-process mutex serializes
// writers within this process; concurrent processes can race, which is
// accepted at this scale.
type File struct {
	path string
	mu   sync.RWMutex
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Save(ctx context.Context, submission model.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	submissions := f.load()
	submissions = append(submissions, submission)
	return f.write(submissions)
}

func (f *File) GetAll(ctx context.Context) ([]model.Submission, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.load(), nil
}

func (f *File) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, s := range f.load() {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (f *File) GetByEmail(ctx context.Context, email string) ([]model.Submission, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []model.Submission
	for _, s := range f.load() {
		if strings.EqualFold(s.Email, email) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *File) UpdatePlan(ctx context.Context, id string, plan *model.AdmissionPlan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	submissions := f.load()
	for i := range submissions {
		if submissions[i].ID == id {
			submissions[i].Response.Plan = plan
			return f.write(submissions)
		}
	}
	return nil
}

// load reads the backing file. Missing or corrupt files read as empty; reads
// never fail the caller.
func (f *File) load() []model.Submission {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			common.Logger().Warn("storage: read file failed", "path", f.path, "error", err)
		}
		return nil
	}
	var submissions []model.Submission
	if err := json.Unmarshal(data, &submissions); err != nil {
		common.Logger().Warn("storage: decode file failed", "path", f.path, "error", err)
		return nil
	}
	return submissions
}

func (f *File) write(submissions []model.Submission) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(submissions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode submissions: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write submissions: %w", err)
	}
	return nil
}
