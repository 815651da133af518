package dto

import (
	"mime/multipart"
	"time"

	"audio-transcript/internal/app/model"
)

// CreateTranscriptRequest is the multipart upload of one audio file
type CreateTranscriptRequest struct {
	File   *multipart.FileHeader `form:"file" binding:"required" swaggerignore:"true"`
	Format string                `form:"format" binding:"omitempty,oneof=json text markdown xlsx"`
}

// TranscriptResponse is the JSON representation of a finished transcript
type TranscriptResponse struct {
	FileName         string           `json:"file_name"`
	FileSize         int64            `json:"file_size"`
	MimeType         string           `json:"mime_type"`
	Capability       string           `json:"capability"`
	Model            string           `json:"model"`
	Turns            model.Transcript `json:"turns"`
	Speakers         []string         `json:"speakers"`
	LineCount        int              `json:"line_count"`
	Text             string           `json:"text"`
	ProcessingTimeMs int64            `json:"processing_time_ms"`
	CreatedAt        time.Time        `json:"created_at"`
}

// CapabilitiesResponse lists the capabilities compiled into the server
type CapabilitiesResponse struct {
	Active     string   `json:"active"`
	Model      string   `json:"model"`
	Registered []string `json:"registered"`
	Formats    []string `json:"formats"`
	MaxUpload  int64    `json:"max_upload_bytes"`
}

// HealthResponse is returned by /health
type HealthResponse struct {
	Status     string    `json:"status"`
	Version    string    `json:"version"`
	Capability string    `json:"capability"`
	Timestamp  time.Time `json:"timestamp"`
}
