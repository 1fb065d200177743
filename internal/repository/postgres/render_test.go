package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/RMahshie/wavegen/internal/repository"
	"github.com/RMahshie/wavegen/pkg/models"
)

// setupDatabase starts a PostgreSQL container and returns a migrated connection
func setupDatabase(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()

	container, err := pgContainer.Run(ctx,
		"postgres:15-alpine",
		pgContainer.WithDatabase("wavegen_test"),
		pgContainer.WithUsername("testuser"),
		pgContainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db))
	// Migrate must be idempotent
	require.NoError(t, Migrate(ctx, db))

	return db
}

func newJob() *models.RenderJob {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.RenderJob{
		ID:         uuid.New().String(),
		Oscillator: "sine",
		SampleRate: 1000,
		Frequency:  2,
		Duration:   1.5,
		Amplitude:  -3,
		Format:     "wav",
		Status:     models.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestRenderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := setupDatabase(t)
	repo := NewPostgresRenderRepository(db)
	ctx := context.Background()

	job := newJob()
	require.NoError(t, repo.Create(ctx, job))
	id := uuid.MustParse(job.ID)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, job.Oscillator, got.Oscillator)
	assert.Equal(t, job.SampleRate, got.SampleRate)
	assert.Equal(t, job.Amplitude, got.Amplitude)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Nil(t, got.ObjectKey)
	assert.Nil(t, got.CompletedAt)

	require.NoError(t, repo.UpdateStatus(ctx, id, models.StatusProcessing, 40))
	require.NoError(t, repo.StoreResult(ctx, id, "renders/"+job.ID+".wav", 1500))
	require.NoError(t, repo.UpdateStatus(ctx, id, models.StatusCompleted, 100))

	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)
	require.NotNil(t, got.ObjectKey)
	assert.Equal(t, "renders/"+job.ID+".wav", *got.ObjectKey)
	require.NotNil(t, got.PointCount)
	assert.Equal(t, 1500, *got.PointCount)
	assert.NotNil(t, got.CompletedAt)

	failed := newJob()
	require.NoError(t, repo.Create(ctx, failed))
	failedID := uuid.MustParse(failed.ID)
	require.NoError(t, repo.UpdateError(ctx, failedID, "boom"))

	got, err = repo.GetByID(ctx, failedID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMsg)
	assert.Equal(t, "boom", *got.ErrorMsg)

	jobs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestRenderRepository_NotFound_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := setupDatabase(t)
	repo := NewPostgresRenderRepository(db)
	ctx := context.Background()
	missing := uuid.New()

	_, err := repo.GetByID(ctx, missing)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.UpdateStatus(ctx, missing, models.StatusProcessing, 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.UpdateError(ctx, missing, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
