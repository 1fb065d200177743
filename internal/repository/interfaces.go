package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/RMahshie/wavegen/pkg/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("repository: not found")

// RenderRepository defines the interface for render job data operations
type RenderRepository interface {
	Create(ctx context.Context, job *models.RenderJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RenderJob, error)
	List(ctx context.Context, limit int) ([]*models.RenderJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error
	UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error
	StoreResult(ctx context.Context, id uuid.UUID, objectKey string, pointCount int) error
}
