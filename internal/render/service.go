package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/wavegen/internal/export"
	"github.com/RMahshie/wavegen/internal/osc"
	"github.com/RMahshie/wavegen/internal/repository"
	"github.com/RMahshie/wavegen/internal/storage"
	"github.com/RMahshie/wavegen/pkg/models"
)

type RenderService interface {
	RenderJob(ctx context.Context, jobID uuid.UUID) error
}

type renderService struct {
	s3         storage.S3Service
	repository repository.RenderRepository
	factory    osc.Factory
}

func NewRenderService(s3Service storage.S3Service, repo repository.RenderRepository) RenderService {
	return &renderService{
		s3:         s3Service,
		repository: repo,
	}
}

// ObjectKey is the storage key for a job's rendered file.
func ObjectKey(jobID string, f export.Format) string {
	return fmt.Sprintf("renders/%s.%s", jobID, export.Extension(f))
}

// RenderJob synthesizes the job's waveform, encodes it and uploads the result.
// Failures after the job is loaded mark it as failed before returning.
func (s *renderService) RenderJob(ctx context.Context, jobID uuid.UUID) error {
	if err := s.repository.UpdateStatus(ctx, jobID, models.StatusProcessing, 10); err != nil {
		return err
	}

	job, err := s.repository.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	logger := log.With().Str("jobID", job.ID).Str("oscillator", job.Oscillator).Int("sampleRate", job.SampleRate).Logger()

	// A fresh oscillator per job; oscillators must not be shared across goroutines.
	shape, err := osc.ShapeByName(job.Oscillator)
	if err != nil {
		return s.fail(ctx, jobID, "Unknown oscillator", err)
	}
	oscillator, err := osc.New(osc.DefaultSampleRate, shape)
	if err != nil {
		return s.fail(ctx, jobID, "Failed to build oscillator", err)
	}

	wf, err := s.factory.Create(job.SampleRate, job.Frequency, job.Duration, job.Amplitude, oscillator)
	if err != nil {
		return s.fail(ctx, jobID, "Synthesis failed", err)
	}
	if !wf.Finite() {
		return s.fail(ctx, jobID, "Synthesis failed", osc.ErrDegenerateWaveform)
	}
	logger.Debug().Int("points", wf.Len()).Msg("Waveform synthesized")

	if err := s.repository.UpdateStatus(ctx, jobID, models.StatusProcessing, 40); err != nil {
		return s.fail(ctx, jobID, "Failed to update progress", err)
	}

	format, err := export.ParseFormat(job.Format)
	if err != nil {
		return s.fail(ctx, jobID, "Unsupported format", err)
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, wf, format, export.Options{SampleRate: job.SampleRate}); err != nil {
		return s.fail(ctx, jobID, "Encoding failed", err)
	}

	if err := s.repository.UpdateStatus(ctx, jobID, models.StatusProcessing, 70); err != nil {
		return s.fail(ctx, jobID, "Failed to update progress", err)
	}

	key := ObjectKey(job.ID, format)
	if err := s.s3.UploadFile(ctx, key, export.ContentType(format), buf.Bytes()); err != nil {
		return s.fail(ctx, jobID, "Upload failed", err)
	}

	if err := s.repository.UpdateStatus(ctx, jobID, models.StatusProcessing, 90); err != nil {
		s.discard(ctx, key)
		return s.fail(ctx, jobID, "Failed to update progress", err)
	}

	if err := s.repository.StoreResult(ctx, jobID, key, wf.Len()); err != nil {
		s.discard(ctx, key)
		return s.fail(ctx, jobID, "Failed to store result", err)
	}

	if err := s.repository.UpdateStatus(ctx, jobID, models.StatusCompleted, 100); err != nil {
		return s.fail(ctx, jobID, "Failed to complete render", err)
	}

	logger.Info().Str("objectKey", key).Int("bytes", buf.Len()).Msg("Render completed")
	return nil
}

// discard removes an uploaded file that no job record points to.
func (s *renderService) discard(ctx context.Context, key string) {
	if err := s.s3.DeleteFile(ctx, key); err != nil {
		log.Warn().Err(err).Str("objectKey", key).Msg("Failed to delete orphaned render")
	}
}

func (s *renderService) fail(ctx context.Context, jobID uuid.UUID, msg string, cause error) error {
	if err := s.repository.UpdateError(ctx, jobID, fmt.Sprintf("%s: %v", msg, cause)); err != nil {
		log.Error().Err(err).Str("jobID", jobID.String()).Msg("Failed to record render error")
	}
	return fmt.Errorf("%s: %w", msg, cause)
}
