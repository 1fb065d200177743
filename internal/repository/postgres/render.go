package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/RMahshie/wavegen/internal/repository"
	"github.com/RMahshie/wavegen/pkg/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS render_jobs (
	id            UUID PRIMARY KEY,
	oscillator    TEXT NOT NULL,
	sample_rate   INTEGER NOT NULL CHECK (sample_rate >= 1),
	frequency     DOUBLE PRECISION NOT NULL,
	duration      DOUBLE PRECISION NOT NULL,
	amplitude     DOUBLE PRECISION NOT NULL,
	format        TEXT NOT NULL,
	status        TEXT NOT NULL,
	progress      INTEGER NOT NULL DEFAULT 0,
	object_key    TEXT,
	point_count   INTEGER,
	error_message TEXT,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL,
	completed_at  TIMESTAMPTZ
)`

const selectColumns = `
		SELECT id, oscillator, sample_rate, frequency, duration, amplitude, format, status, progress,
		       object_key, point_count, error_message, created_at, updated_at, completed_at
		FROM render_jobs`

// Migrate creates the render_jobs table if it does not exist
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate render_jobs: %w", err)
	}
	return nil
}

// PostgresRenderRepository implements RenderRepository for PostgreSQL
type PostgresRenderRepository struct {
	db *sql.DB
}

// NewPostgresRenderRepository creates a new PostgreSQL render repository
func NewPostgresRenderRepository(db *sql.DB) repository.RenderRepository {
	return &PostgresRenderRepository{db: db}
}

// Create inserts a new render job record
func (r *PostgresRenderRepository) Create(ctx context.Context, job *models.RenderJob) error {
	query := `
		INSERT INTO render_jobs (id, oscillator, sample_rate, frequency, duration, amplitude, format, status, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		job.ID,
		job.Oscillator,
		job.SampleRate,
		job.Frequency,
		job.Duration,
		job.Amplitude,
		job.Format,
		job.Status,
		job.Progress,
		job.CreatedAt,
		job.UpdatedAt)

	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*models.RenderJob, error) {
	var job models.RenderJob
	var objectKey, errorMsg sql.NullString
	var pointCount sql.NullInt64
	var completedAt sql.NullTime

	err := row.Scan(
		&job.ID,
		&job.Oscillator,
		&job.SampleRate,
		&job.Frequency,
		&job.Duration,
		&job.Amplitude,
		&job.Format,
		&job.Status,
		&job.Progress,
		&objectKey,
		&pointCount,
		&errorMsg,
		&job.CreatedAt,
		&job.UpdatedAt,
		&completedAt)
	if err != nil {
		return nil, err
	}

	if objectKey.Valid {
		job.ObjectKey = &objectKey.String
	}
	if pointCount.Valid {
		n := int(pointCount.Int64)
		job.PointCount = &n
	}
	if errorMsg.Valid {
		job.ErrorMsg = &errorMsg.String
	}
	if completedAt.Valid {
		job.CompletedAt = &completedAt.Time
	}

	return &job, nil
}

// GetByID retrieves a render job by ID
func (r *PostgresRenderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RenderJob, error) {
	job, err := scanJob(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("render job %s: %w", id, repository.ErrNotFound)
	}
	return job, err
}

// List retrieves the most recent render jobs
func (r *PostgresRenderRepository) List(ctx context.Context, limit int) ([]*models.RenderJob, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.RenderJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// UpdateStatus updates the status and progress of a render job
func (r *PostgresRenderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	query := `
		UPDATE render_jobs
		SET status = $1, progress = $2, updated_at = NOW(),
		    completed_at = CASE WHEN $1::text = 'completed' THEN NOW() ELSE completed_at END
		WHERE id = $3`

	return r.execOne(ctx, id, query, status, progress, id)
}

// UpdateError marks a render job as failed with the given message
func (r *PostgresRenderRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	query := `
		UPDATE render_jobs
		SET status = 'failed', error_message = $1, updated_at = NOW()
		WHERE id = $2`

	return r.execOne(ctx, id, query, errorMsg, id)
}

// StoreResult records where the rendered file lives and how many points it holds
func (r *PostgresRenderRepository) StoreResult(ctx context.Context, id uuid.UUID, objectKey string, pointCount int) error {
	query := `
		UPDATE render_jobs
		SET object_key = $1, point_count = $2, updated_at = NOW()
		WHERE id = $3`

	return r.execOne(ctx, id, query, objectKey, pointCount, id)
}

func (r *PostgresRenderRepository) execOne(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("render job %s: %w", id, repository.ErrNotFound)
	}
	return nil
}
