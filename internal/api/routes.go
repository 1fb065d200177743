package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/wavegen/internal/api/handlers"
	"github.com/RMahshie/wavegen/internal/config"
	"github.com/RMahshie/wavegen/internal/render"
	"github.com/RMahshie/wavegen/internal/repository"
	"github.com/RMahshie/wavegen/internal/storage"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, renderRepo repository.RenderRepository, s3Service storage.S3Service, renderSvc render.RenderService, synth config.SynthesisConfig) {
	waveformHandler := handlers.NewWaveformHandler(renderRepo, s3Service, renderSvc, synth)

	huma.Register(api, huma.Operation{
		OperationID: "listOscillators",
		Method:      http.MethodGet,
		Path:        "/api/oscillators",
		Summary:     "List oscillators",
		Description: "Returns the available oscillator shapes and the default sample rate",
		Tags:        []string{"Waveforms"},
	}, waveformHandler.ListOscillators)

	huma.Register(api, huma.Operation{
		OperationID: "generateWaveform",
		Method:      http.MethodPost,
		Path:        "/api/waveforms",
		Summary:     "Generate a waveform",
		Description: "Synthesizes a waveform and returns its points as objects, tuples or records",
		Tags:        []string{"Waveforms"},
	}, waveformHandler.GenerateWaveform)

	huma.Register(api, huma.Operation{
		OperationID:   "createRender",
		Method:        http.MethodPost,
		Path:          "/api/renders",
		Summary:       "Create a render",
		Description:   "Creates a render job and starts rendering the waveform to storage",
		Tags:          []string{"Renders"},
		DefaultStatus: http.StatusAccepted,
	}, waveformHandler.CreateRender)

	huma.Register(api, huma.Operation{
		OperationID: "listRenders",
		Method:      http.MethodGet,
		Path:        "/api/renders",
		Summary:     "List renders",
		Description: "Returns the most recent render jobs, newest first",
		Tags:        []string{"Renders"},
	}, waveformHandler.ListRenders)

	huma.Register(api, huma.Operation{
		OperationID: "getRenderStatus",
		Method:      http.MethodGet,
		Path:        "/api/renders/{id}",
		Summary:     "Get render status",
		Description: "Returns the current status and progress of a render job",
		Tags:        []string{"Renders"},
	}, waveformHandler.GetRenderStatus)

	huma.Register(api, huma.Operation{
		OperationID: "getRenderDownload",
		Method:      http.MethodGet,
		Path:        "/api/renders/{id}/download",
		Summary:     "Get render download URL",
		Description: "Returns a pre-signed URL for a completed render",
		Tags:        []string{"Renders"},
	}, waveformHandler.GetRenderDownload)

	huma.Register(api, huma.Operation{
		OperationID: "getRenderFile",
		Method:      http.MethodGet,
		Path:        "/api/renders/{id}/file",
		Summary:     "Get render file",
		Description: "Streams a completed render from storage",
		Tags:        []string{"Renders"},
	}, waveformHandler.GetRenderFile)
}
