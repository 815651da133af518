package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"audio-transcript/internal/api/middleware"
	"audio-transcript/internal/api/v1/dto"
	"audio-transcript/internal/api/v1/services"
	"audio-transcript/internal/app/transcript"
)

// TranscriptHandler handles transcript-related API endpoints
type TranscriptHandler struct {
	service services.TranscriptService
	export  services.ExportService
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(service services.TranscriptService, export services.ExportService) *TranscriptHandler {
	return &TranscriptHandler{
		service: service,
		export:  export,
	}
}

// Create handles POST /api/v1/transcripts
// Uploads one MP3 file and returns its speaker-attributed transcript
//
// @Summary Transcribe an MP3 file
// @Description Uploads an MP3 file, sends it to the configured speech capability and returns a diarized, timestamped transcript
// @Tags transcripts
// @Accept multipart/form-data
// @Produce json
// @Produce plain
// @Produce octet-stream
// @Param file formData file true "MP3 audio file"
// @Param format formData string false "Response format" Enums(json,text,markdown,xlsx) default(json)
// @Success 200 {object} dto.TranscriptResponse "Transcript"
// @Failure 400 {object} errors.APIError "Bad request - missing or unreadable file"
// @Failure 413 {object} errors.APIError "File exceeds the upload limit"
// @Failure 415 {object} errors.APIError "File is not an MP3"
// @Failure 502 {object} errors.APIError "Speech API failed or returned a malformed transcript"
// @Failure 503 {object} errors.APIError "API key not configured"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcripts [post]
func (h *TranscriptHandler) Create(c *gin.Context) {
	var req dto.CreateTranscriptRequest

	if err := middleware.ValidateForm(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	format := transcript.FormatJSON
	if req.Format != "" {
		f, err := transcript.ParseFormat(req.Format)
		if err != nil {
			middleware.HandleError(c, err)
			return
		}
		format = f
	}

	response, err := h.service.CreateTranscript(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if format == transcript.FormatJSON {
		c.JSON(http.StatusOK, response)
		return
	}

	name := strings.TrimSuffix(response.FileName, filepath.Ext(response.FileName)) + format.Extension()
	if format == transcript.FormatXLSX {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
	c.Header("Content-Type", h.export.ContentType(format))
	c.Status(http.StatusOK)
	if err := h.export.ExportTranscript(c.Request.Context(), response, format, c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// Capabilities handles GET /api/v1/capabilities
//
// @Summary List speech capabilities
// @Description Returns the active capability, its model and every capability compiled into the server
// @Tags transcripts
// @Produce json
// @Success 200 {object} dto.CapabilitiesResponse "Capabilities"
// @Router /capabilities [get]
func (h *TranscriptHandler) Capabilities(c *gin.Context) {
	response, err := h.service.Capabilities(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
