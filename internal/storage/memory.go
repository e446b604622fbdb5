package storage

import (
	"context"
	"strings"
	"sync"

	"github.com/studyway/studyway/internal/model"
)

// Memory keeps submissions in an in-process list. Constructed once per
// process and injected; contents are lost on restart.
type Memory struct {
	mu          sync.RWMutex
	submissions []model.Submission
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(ctx context.Context, submission model.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions = append(m.submissions, submission)
	return nil
}

func (m *Memory) GetAll(ctx context.Context) ([]model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Submission, len(m.submissions))
	copy(out, m.submissions)
	return out, nil
}

func (m *Memory) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.submissions {
		if m.submissions[i].ID == id {
			found := m.submissions[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetByEmail(ctx context.Context, email string) ([]model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Submission
	for _, s := range m.submissions {
		if strings.EqualFold(s.Email, email) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *Memory) UpdatePlan(ctx context.Context, id string, plan *model.AdmissionPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.submissions {
		if m.submissions[i].ID == id {
			m.submissions[i].Response.Plan = plan
			return nil
		}
	}
	return nil
}
