package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"audio-transcript/internal/api/v1/dto"
	"audio-transcript/internal/app/api/provider"
	"audio-transcript/internal/app/audio"
	"audio-transcript/internal/app/errors"
	"audio-transcript/internal/app/logging"
	"audio-transcript/internal/app/transcript"
)

// TranscriptServiceImpl implements TranscriptService
type TranscriptServiceImpl struct {
	transcriber    Transcriber
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(transcriber Transcriber, maxUploadBytes int64, logger *zap.Logger) TranscriptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptServiceImpl{
		transcriber:    transcriber,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// CreateTranscript enforces the upload policy, encodes the file and
// requests its transcript
func (s *TranscriptServiceImpl) CreateTranscript(ctx context.Context, req *dto.CreateTranscriptRequest) (*dto.TranscriptResponse, error) {
	logger := logging.FromContext(ctx, s.logger)
	start := time.Now()

	if req.File == nil {
		return nil, errors.RequiredField("file")
	}
	if s.maxUploadBytes > 0 && req.File.Size > s.maxUploadBytes {
		return nil, errors.ErrFileTooLarge.With(fmt.Errorf("%d bytes exceeds the %d MB limit", req.File.Size, s.maxUploadBytes>>20))
	}

	f, err := req.File.Open()
	if err != nil {
		return nil, errors.ErrFileReadFailed.With(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.ErrFileReadFailed.With(err)
	}

	mediaType := audio.ResolveMediaType(req.File.Header.Get("Content-Type"), req.File.Filename, data)
	if !audio.IsAccepted(mediaType) {
		logger.Info("rejected upload", zap.String("file", req.File.Filename), zap.String("mime_type", mediaType))
		return nil, errors.ErrUnsupportedMediaType.With(fmt.Errorf("got %s", mediaType))
	}

	payload, err := audio.Encode(ctx, bytes.NewReader(data), audio.AcceptedMediaType)
	if err != nil {
		return nil, err
	}

	turns, err := s.transcriber.Transcribe(ctx, payload)
	if err != nil {
		return nil, err
	}

	logger.Info("transcript created",
		zap.String("file", req.File.Filename),
		zap.Int64("size", req.File.Size),
		zap.Int("turns", len(turns)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &dto.TranscriptResponse{
		FileName:         req.File.Filename,
		FileSize:         req.File.Size,
		MimeType:         payload.MimeType,
		Capability:       s.transcriber.CapabilityName(),
		Model:            s.transcriber.Model(),
		Turns:            turns,
		Speakers:         turns.Speakers(),
		LineCount:        turns.LineCount(),
		Text:             transcript.RenderText(turns),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		CreatedAt:        start.UTC(),
	}, nil
}

// Capabilities reports the active and registered capabilities
func (s *TranscriptServiceImpl) Capabilities(ctx context.Context) (*dto.CapabilitiesResponse, error) {
	return &dto.CapabilitiesResponse{
		Active:     s.transcriber.CapabilityName(),
		Model:      s.transcriber.Model(),
		Registered: provider.ListRegisteredCapabilities(),
		Formats: []string{
			string(transcript.FormatJSON),
			string(transcript.FormatText),
			string(transcript.FormatMarkdown),
			string(transcript.FormatXLSX),
		},
		MaxUpload: s.maxUploadBytes,
	}, nil
}
