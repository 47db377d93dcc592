package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaiso/Conveyor/internal/domain"
)

// RunRepo — репозиторий истории прогонов.
type RunRepo struct {
	pool *pgxpool.Pool
}

// NewRunRepo создаёт новый RunRepo.
func NewRunRepo(pool *pgxpool.Pool) *RunRepo {
	return &RunRepo{pool: pool}
}

// EnsureSchema создаёт таблицу истории, если её ещё нет.
//
// Conveyor — CLI-инструмент без отдельного шага миграций, поэтому
// схема поддерживается на месте.
func (r *RunRepo) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS pipeline_runs (
			id               uuid PRIMARY KEY,
			pipeline_name    text NOT NULL,
			status           text NOT NULL,
			total_steps      int  NOT NULL,
			completed_steps  int  NOT NULL,
			failed_step      text,
			failed_exit_code int,
			error            text,
			started_at       timestamptz NOT NULL,
			finished_at      timestamptz NOT NULL
		)
	`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Save записывает отчёт о прогоне.
func (r *RunRepo) Save(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO pipeline_runs
			(id, pipeline_name, status, total_steps, completed_steps,
			 failed_step, failed_exit_code, error, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		report.ID,
		report.PipelineName,
		string(report.Status),
		report.TotalSteps,
		report.CompletedSteps,
		nullString(report.FailedStepName()),
		report.FailedExitCode,
		nullString(report.Error),
		report.StartedAt,
		report.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// RunRecord — строка истории прогонов.
type RunRecord struct {
	ID             uuid.UUID `json:"id"`
	PipelineName   string    `json:"pipeline_name"`
	Status         string    `json:"status"`
	TotalSteps     int       `json:"total_steps"`
	CompletedSteps int       `json:"completed_steps"`
	FailedStep     string    `json:"failed_step,omitempty"`
	FailedExitCode *int      `json:"failed_exit_code,omitempty"`
	Error          string    `json:"error,omitempty"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
}

// List возвращает последние прогоны, новые первыми.
// pipelineName фильтрует по имени пайплайна; пустая строка — все.
func (r *RunRepo) List(ctx context.Context, pipelineName string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, pipeline_name, status, total_steps, completed_steps,
		       failed_step, failed_exit_code, error, started_at, finished_at
		FROM pipeline_runs
		WHERE ($1::text IS NULL OR pipeline_name = $1)
		ORDER BY started_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, nullString(pipelineName), limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var failedStep, errText *string
		if err := rows.Scan(
			&rec.ID,
			&rec.PipelineName,
			&rec.Status,
			&rec.TotalSteps,
			&rec.CompletedSteps,
			&failedStep,
			&rec.FailedExitCode,
			&errText,
			&rec.StartedAt,
			&rec.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if failedStep != nil {
			rec.FailedStep = *failedStep
		}
		if errText != nil {
			rec.Error = *errText
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

// nullString возвращает nil для пустой строки (NULL в БД).
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
