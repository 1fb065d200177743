package handlers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/wavegen/internal/config"
	"github.com/RMahshie/wavegen/internal/export"
	"github.com/RMahshie/wavegen/internal/osc"
	"github.com/RMahshie/wavegen/internal/render"
	"github.com/RMahshie/wavegen/internal/repository"
	"github.com/RMahshie/wavegen/internal/storage"
	"github.com/RMahshie/wavegen/pkg/models"
)

var formulas = map[string]string{
	"sine":     "y = amp * sin(2π·f·t)",
	"triangle": "y = (2·amp/π) * asin(sin(2π·f·t))",
}

// synthParams are WaveformParams with every default resolved
type synthParams struct {
	Oscillator string
	SampleRate int
	Frequency  float64
	Duration   float64
	Amplitude  float64
}

// WaveformHandler handles waveform synthesis and render HTTP requests
type WaveformHandler struct {
	repo      repository.RenderRepository
	s3Service storage.S3Service
	renderSvc render.RenderService
	synth     config.SynthesisConfig
	factory   osc.Factory
}

// NewWaveformHandler creates a new waveform handler
func NewWaveformHandler(repo repository.RenderRepository, s3Service storage.S3Service, renderSvc render.RenderService, synth config.SynthesisConfig) *WaveformHandler {
	if synth.DefaultSampleRate < 1 {
		synth.DefaultSampleRate = osc.DefaultSampleRate
	}
	return &WaveformHandler{
		repo:      repo,
		s3Service: s3Service,
		renderSvc: renderSvc,
		synth:     synth,
	}
}

// ListOscillators returns the available oscillator shapes
func (h *WaveformHandler) ListOscillators(ctx context.Context, _ *struct{}) (*models.ListOscillatorsResponse, error) {
	resp := &models.ListOscillatorsResponse{}
	for _, name := range osc.ShapeNames() {
		resp.Body.Oscillators = append(resp.Body.Oscillators, models.OscillatorInfo{Name: name, Formula: formulas[name]})
	}
	resp.Body.DefaultSampleRate = h.synth.DefaultSampleRate
	return resp, nil
}

// GenerateWaveform synthesizes a waveform and returns its points
func (h *WaveformHandler) GenerateWaveform(ctx context.Context, req *models.GenerateWaveformRequest) (*models.GenerateWaveformResponse, error) {
	params := h.withDefaults(req.Body.WaveformParams)
	log.Info().
		Str("oscillator", params.Oscillator).
		Int("sampleRate", params.SampleRate).
		Float64("frequency", params.Frequency).
		Float64("duration", params.Duration).
		Float64("amplitude", params.Amplitude).
		Msg("Generating waveform")

	if err := h.validateDuration(params.Duration); err != nil {
		return nil, err
	}

	wf, err := h.synthesize(params)
	if err != nil {
		return nil, err
	}

	asType := osc.ExportType(req.Body.AsType)
	if asType == "" {
		asType = osc.ExportObjects
	}
	points, err := wf.Points(asType)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid as_type", err)
	}
	// Point fields are unexported; give objects a JSON shape.
	if objects, ok := points.([]osc.Point); ok {
		points = models.PointObjects(objects)
	}

	return &models.GenerateWaveformResponse{
		Body: models.GenerateWaveformResponseBody{
			Oscillator: params.Oscillator,
			SampleRate: params.SampleRate,
			AsType:     string(asType),
			Count:      wf.Len(),
			Points:     points,
		},
	}, nil
}

// CreateRender creates a render job and starts rendering it in the background
func (h *WaveformHandler) CreateRender(ctx context.Context, req *models.CreateRenderRequest) (*models.CreateRenderResponse, error) {
	params := h.withDefaults(req.Body.WaveformParams)

	if _, err := osc.ShapeByName(params.Oscillator); err != nil {
		return nil, huma.Error400BadRequest("Unknown oscillator", err)
	}
	if params.SampleRate < 1 {
		return nil, huma.Error400BadRequest("Invalid sample rate", osc.ErrInvalidSampleRate)
	}
	if err := h.validateDuration(params.Duration); err != nil {
		return nil, err
	}
	formatName := req.Body.Format
	if formatName == "" {
		formatName = string(export.FormatJSON)
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return nil, huma.Error400BadRequest("Unsupported format", err)
	}

	jobID := uuid.New()
	now := time.Now()
	job := &models.RenderJob{
		ID:         jobID.String(),
		Oscillator: params.Oscillator,
		SampleRate: params.SampleRate,
		Frequency:  params.Frequency,
		Duration:   params.Duration,
		Amplitude:  params.Amplitude,
		Format:     string(format),
		Status:     models.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.repo.Create(ctx, job); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create render job", err)
	}
	log.Info().Str("jobID", job.ID).Str("format", job.Format).Msg("Render job created")

	// Start rendering in background (don't wait for completion)
	go func() {
		if err := h.renderSvc.RenderJob(context.Background(), jobID); err != nil {
			log.Error().Err(err).Str("jobID", jobID.String()).Msg("Render failed")
		}
	}()

	return &models.CreateRenderResponse{
		Body: models.CreateRenderResponseBody{
			ID:     job.ID,
			Status: job.Status,
		},
	}, nil
}

// GetRenderStatus returns the current status of a render job
func (h *WaveformHandler) GetRenderStatus(ctx context.Context, req *models.GetRenderRequest) (*models.GetRenderStatusResponse, error) {
	job, err := h.lookup(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &models.GetRenderStatusResponse{Body: h.statusBody(job)}, nil
}

// ListRenders returns the most recent render jobs
func (h *WaveformHandler) ListRenders(ctx context.Context, req *models.ListRendersRequest) (*models.ListRendersResponse, error) {
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}

	jobs, err := h.repo.List(ctx, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list renders", err)
	}

	resp := &models.ListRendersResponse{}
	resp.Body.Renders = make([]models.GetRenderStatusResponseBody, 0, len(jobs))
	for _, job := range jobs {
		resp.Body.Renders = append(resp.Body.Renders, h.statusBody(job))
	}
	return resp, nil
}

// GetRenderFile streams a completed render from storage
func (h *WaveformHandler) GetRenderFile(ctx context.Context, req *models.GetRenderRequest) (*models.GetRenderFileResponse, error) {
	job, err := h.completed(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	data, err := h.s3Service.DownloadFile(ctx, *job.ObjectKey)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to fetch render", err)
	}

	format := export.Format(job.Format)
	return &models.GetRenderFileResponse{
		ContentType:        export.ContentType(format),
		ContentDisposition: fmt.Sprintf(`attachment; filename="%s.%s"`, job.ID, export.Extension(format)),
		Body:               data,
	}, nil
}

// GetRenderDownload returns a pre-signed URL for a completed render
func (h *WaveformHandler) GetRenderDownload(ctx context.Context, req *models.GetRenderRequest) (*models.GetRenderDownloadResponse, error) {
	job, err := h.completed(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	url, err := h.s3Service.GenerateDownloadURL(ctx, *job.ObjectKey)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate download URL", err)
	}

	return &models.GetRenderDownloadResponse{
		Body: models.GetRenderDownloadResponseBody{
			ID:          job.ID,
			DownloadURL: url,
			ContentType: export.ContentType(export.Format(job.Format)),
			ExpiresIn:   int(storage.DownloadURLExpiry.Seconds()),
		},
	}, nil
}

func (h *WaveformHandler) lookup(ctx context.Context, rawID string) (*models.RenderJob, error) {
	jobID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid render ID", err)
	}

	job, err := h.repo.GetByID(ctx, jobID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, huma.Error404NotFound("Render not found", err)
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load render", err)
	}
	return job, nil
}

// completed loads a job and rejects it with 409 unless its file is stored
func (h *WaveformHandler) completed(ctx context.Context, rawID string) (*models.RenderJob, error) {
	job, err := h.lookup(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.StatusCompleted || job.ObjectKey == nil {
		return nil, huma.Error409Conflict("Render not yet completed",
			fmt.Errorf("render status is %s", job.Status))
	}
	return job, nil
}

func (h *WaveformHandler) statusBody(job *models.RenderJob) models.GetRenderStatusResponseBody {
	return models.GetRenderStatusResponseBody{
		ID:         job.ID,
		Oscillator: job.Oscillator,
		Format:     job.Format,
		Status:     job.Status,
		Progress:   job.Progress,
		Message:    h.generateStatusMessage(job.Status, job.Progress),
		PointCount: job.PointCount,
		Error:      job.ErrorMsg,
		CreatedAt:  job.CreatedAt,
		FinishedAt: job.CompletedAt,
	}
}

func (h *WaveformHandler) withDefaults(p models.WaveformParams) synthParams {
	sp := synthParams{
		Oscillator: p.Oscillator,
		SampleRate: p.SampleRate,
		Frequency:  valueOr(p.Frequency, 1),
		Duration:   valueOr(p.Duration, 1),
		Amplitude:  valueOr(p.Amplitude, 1),
	}
	if sp.Oscillator == "" {
		sp.Oscillator = "sine"
	}
	if sp.SampleRate == 0 {
		sp.SampleRate = h.synth.DefaultSampleRate
	}
	return sp
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func (h *WaveformHandler) validateDuration(dur float64) error {
	if h.synth.MaxDurationSeconds > 0 && math.Abs(dur) > h.synth.MaxDurationSeconds {
		return huma.Error400BadRequest(fmt.Sprintf("Duration exceeds %g seconds", h.synth.MaxDurationSeconds))
	}
	return nil
}

func (h *WaveformHandler) synthesize(p synthParams) (*osc.Waveform, error) {
	shape, err := osc.ShapeByName(p.Oscillator)
	if err != nil {
		return nil, huma.Error400BadRequest("Unknown oscillator", err)
	}
	oscillator, err := osc.New(osc.DefaultSampleRate, shape)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to build oscillator", err)
	}

	wf, err := h.factory.Create(p.SampleRate, p.Frequency, p.Duration, p.Amplitude, oscillator)
	if errors.Is(err, osc.ErrInvalidSampleRate) {
		return nil, huma.Error400BadRequest("Invalid sample rate", err)
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Synthesis failed", err)
	}
	if !wf.Finite() {
		return nil, huma.Error400BadRequest("Waveform cannot be rescaled: amplitudes are constant", osc.ErrDegenerateWaveform)
	}
	return wf, nil
}

// generateStatusMessage creates a human-readable status message
func (h *WaveformHandler) generateStatusMessage(status string, progress int) string {
	switch status {
	case models.StatusPending:
		return "Render queued..."
	case models.StatusProcessing:
		if progress < 40 {
			return "Synthesizing waveform..."
		} else if progress < 70 {
			return "Encoding output..."
		} else {
			return "Uploading render..."
		}
	case models.StatusCompleted:
		return "Render complete!"
	case models.StatusFailed:
		return "Render failed. Please try again."
	default:
		return "Unknown status"
	}
}
