package services

import (
	"context"
	"io"

	"audio-transcript/internal/api/v1/dto"
	"audio-transcript/internal/app/model"
	"audio-transcript/internal/app/transcript"
)

// Transcriber is the part of transcript.Requester the API depends on
type Transcriber interface {
	Transcribe(ctx context.Context, payload model.AudioPayload) (model.Transcript, error)
	Model() string
	CapabilityName() string
}

// TranscriptService defines the interface for transcript operations
type TranscriptService interface {
	CreateTranscript(ctx context.Context, req *dto.CreateTranscriptRequest) (*dto.TranscriptResponse, error)
	Capabilities(ctx context.Context) (*dto.CapabilitiesResponse, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	ExportTranscript(ctx context.Context, resp *dto.TranscriptResponse, format transcript.Format, writer io.Writer) error
	ContentType(format transcript.Format) string
}
