package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/studyway/studyway/internal/model"
)

// Postgres stores submissions in a single table with JSONB payloads. The
// schema is created lazily on open; saves upsert by id.
type Postgres struct {
	db *sqlx.DB
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS submissions (
                id TEXT PRIMARY KEY,
                email TEXT NOT NULL,
                input JSONB NOT NULL,
                response JSONB NOT NULL,
                created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_email ON submissions (LOWER(email));`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions (created_at DESC);`,
}

func OpenPostgres(url string) (*Postgres, error) {
	db, err := sqlx.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(15 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	store := &Postgres{db: db}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (p *Postgres) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}

func (p *Postgres) migrate(ctx context.Context) error {
	for i, stmt := range postgresSchema {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

type submissionRow struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Input     []byte    `db:"input"`
	Response  []byte    `db:"response"`
	CreatedAt time.Time `db:"created_at"`
}

func (r submissionRow) toModel() (model.Submission, error) {
	sub := model.Submission{ID: r.ID, Email: r.Email, CreatedAt: r.CreatedAt}
	if err := json.Unmarshal(r.Input, &sub.Input); err != nil {
		return model.Submission{}, fmt.Errorf("decode input: %w", err)
	}
	if err := json.Unmarshal(r.Response, &sub.Response); err != nil {
		return model.Submission{}, fmt.Errorf("decode response: %w", err)
	}
	return sub, nil
}

func (p *Postgres) Save(ctx context.Context, submission model.Submission) error {
	input, err := json.Marshal(submission.Input)
	if err != nil {
		return fmt.Errorf("encode input: %w", err)
	}
	response, err := json.Marshal(submission.Response)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO submissions (id, email, input, response, created_at)
                 VALUES ($1, $2, $3, $4, $5)
                 ON CONFLICT (id) DO UPDATE
                 SET email = EXCLUDED.email, input = EXCLUDED.input, response = EXCLUDED.response`,
		submission.ID, submission.Email, input, response, submission.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (p *Postgres) GetAll(ctx context.Context) ([]model.Submission, error) {
	var rows []submissionRow
	err := p.db.SelectContext(ctx, &rows,
		`SELECT id, email, input, response, created_at FROM submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select submissions: %w", err)
	}
	return rowsToModels(rows)
}

func (p *Postgres) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	var row submissionRow
	err := p.db.GetContext(ctx, &row,
		`SELECT id, email, input, response, created_at FROM submissions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select submission: %w", err)
	}
	sub, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (p *Postgres) GetByEmail(ctx context.Context, email string) ([]model.Submission, error) {
	var rows []submissionRow
	err := p.db.SelectContext(ctx, &rows,
		`SELECT id, email, input, response, created_at FROM submissions
                 WHERE LOWER(email) = LOWER($1) ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, fmt.Errorf("select submissions by email: %w", err)
	}
	return rowsToModels(rows)
}

func (p *Postgres) UpdatePlan(ctx context.Context, id string, plan *model.AdmissionPlan) error {
	encoded, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	_, err = p.db.ExecContext(ctx,
		`UPDATE submissions SET response = jsonb_set(response, '{plan}', $2::jsonb) WHERE id = $1`,
		id, encoded)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

func rowsToModels(rows []submissionRow) ([]model.Submission, error) {
	out := make([]model.Submission, 0, len(rows))
	for _, row := range rows {
		sub, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}
