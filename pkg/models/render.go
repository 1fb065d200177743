package models

import (
	"time"
)

// Render job statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// CreateRenderRequest represents a request to render a waveform to storage
type CreateRenderRequest struct {
	Body struct {
		WaveformParams
		Format string `json:"format" required:"false" enum:"json,yaml,csv,wav" default:"json" doc:"Output file format"`
	}
}

// CreateRenderResponseBody is the body of the create render response
type CreateRenderResponseBody struct {
	ID     string `json:"id" doc:"Render job unique identifier"`
	Status string `json:"status" enum:"pending,processing,completed,failed" doc:"Render status"`
}

// CreateRenderResponse represents the response from creating a render job
type CreateRenderResponse struct {
	Body CreateRenderResponseBody
}

// GetRenderRequest represents a request addressed to one render job
type GetRenderRequest struct {
	ID string `path:"id" doc:"Render job ID"`
}

// GetRenderStatusResponseBody is the body of the status response
type GetRenderStatusResponseBody struct {
	ID         string     `json:"id" doc:"Render job ID"`
	Oscillator string     `json:"oscillator" doc:"Oscillator shape"`
	Format     string     `json:"format" doc:"Output file format"`
	Status     string     `json:"status" enum:"pending,processing,completed,failed" doc:"Render status"`
	Progress   int        `json:"progress" minimum:"0" maximum:"100" doc:"Render progress percentage"`
	Message    string     `json:"message,omitempty" doc:"Human-readable status message"`
	PointCount *int       `json:"point_count,omitempty" doc:"Number of rendered points when complete"`
	Error      *string    `json:"error,omitempty" doc:"Failure reason"`
	CreatedAt  time.Time  `json:"created_at" doc:"Job creation timestamp"`
	FinishedAt *time.Time `json:"completed_at,omitempty" doc:"Job completion timestamp"`
}

// GetRenderStatusResponse represents the current status of a render job
type GetRenderStatusResponse struct {
	Body GetRenderStatusResponseBody
}

// ListRendersRequest selects the most recent render jobs
type ListRendersRequest struct {
	Limit int `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Maximum number of jobs to return"`
}

// ListRendersResponse lists render jobs, newest first
type ListRendersResponse struct {
	Body struct {
		Renders []GetRenderStatusResponseBody `json:"renders" doc:"Render jobs ordered by creation time, newest first"`
	}
}

// GetRenderFileResponse carries the rendered file itself
type GetRenderFileResponse struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// GetRenderDownloadResponseBody is the body of the download response
type GetRenderDownloadResponseBody struct {
	ID          string `json:"id" doc:"Render job ID"`
	DownloadURL string `json:"download_url" doc:"Pre-signed URL for the rendered file"`
	ContentType string `json:"content_type" doc:"MIME type of the rendered file"`
	ExpiresIn   int    `json:"expires_in" doc:"URL expiration time in seconds"`
}

// GetRenderDownloadResponse represents a download link for a finished render
type GetRenderDownloadResponse struct {
	Body GetRenderDownloadResponseBody
}

// RenderJob represents the core render entity (for internal use)
type RenderJob struct {
	ID          string     `json:"id"`
	Oscillator  string     `json:"oscillator"`
	SampleRate  int        `json:"sample_rate"`
	Frequency   float64    `json:"frequency"`
	Duration    float64    `json:"duration"`
	Amplitude   float64    `json:"amplitude"`
	Format      string     `json:"format"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	ObjectKey   *string    `json:"object_key,omitempty"`
	PointCount  *int       `json:"point_count,omitempty"`
	ErrorMsg    *string    `json:"error_message,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
