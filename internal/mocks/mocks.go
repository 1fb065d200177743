// Package mocks provides testify mocks for the repository, storage and render
// interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RMahshie/wavegen/pkg/models"
)

// RenderRepository implements repository.RenderRepository for testing
type RenderRepository struct {
	mock.Mock
}

func (m *RenderRepository) Create(ctx context.Context, job *models.RenderJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *RenderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RenderJob, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*models.RenderJob)
	return job, args.Error(1)
}

func (m *RenderRepository) List(ctx context.Context, limit int) ([]*models.RenderJob, error) {
	args := m.Called(ctx, limit)
	jobs, _ := args.Get(0).([]*models.RenderJob)
	return jobs, args.Error(1)
}

func (m *RenderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	args := m.Called(ctx, id, status, progress)
	return args.Error(0)
}

func (m *RenderRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	args := m.Called(ctx, id, errorMsg)
	return args.Error(0)
}

func (m *RenderRepository) StoreResult(ctx context.Context, id uuid.UUID, objectKey string, pointCount int) error {
	args := m.Called(ctx, id, objectKey, pointCount)
	return args.Error(0)
}

// S3Service implements storage.S3Service for testing
type S3Service struct {
	mock.Mock
}

func (m *S3Service) UploadFile(ctx context.Context, key string, contentType string, body []byte) error {
	args := m.Called(ctx, key, contentType, body)
	return args.Error(0)
}

func (m *S3Service) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *S3Service) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *S3Service) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// RenderService implements render.RenderService for testing
type RenderService struct {
	mock.Mock
}

func (m *RenderService) RenderJob(ctx context.Context, jobID uuid.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}
