package storage

import (
	"context"
	"path/filepath"

	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/config"
	"github.com/studyway/studyway/internal/model"
)

const submissionsFile = "submissions.json"

// Store persists submissions. Reads never fail the caller: implementations
// return empty results when the backing tier is unavailable. Writes surface
// their errors so data loss is never masked.
type Store interface {
	Save(ctx context.Context, submission model.Submission) error
	GetAll(ctx context.Context) ([]model.Submission, error)
	GetByID(ctx context.Context, id string) (*model.Submission, error)
	GetByEmail(ctx context.Context, email string) ([]model.Submission, error)
	UpdatePlan(ctx context.Context, id string, plan *model.AdmissionPlan) error
}

// Open resolves the storage tier for this process: Postgres when a
// connection string is configured (wrapped so reads degrade to the local
// tier), an in-process list on ephemeral filesystems, a JSON file otherwise.
func Open(cfg config.Config) Store {
	logger := common.Logger()
	local := localTier(cfg)
	if cfg.DatabaseURL == "" {
		return local
	}
	pg, err := OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		logger.Error("storage: database unreachable, using local tier", "error", err)
		return local
	}
	logger.Info("storage: postgres tier active")
	return NewFallback(pg, local)
}

func localTier(cfg config.Config) Store {
	if cfg.Ephemeral {
		common.Logger().Info("storage: using in-memory tier (no durable disk)")
		return NewMemory()
	}
	path := filepath.Join(cfg.DataDir, submissionsFile)
	common.Logger().Info("storage: using file tier", "path", path)
	return NewFile(path)
}
