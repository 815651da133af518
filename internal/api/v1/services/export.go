package services

import (
	"context"
	"io"

	"audio-transcript/internal/api/v1/dto"
	"audio-transcript/internal/app/transcript"
	"audio-transcript/internal/app/transcript/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportServiceImpl implements ExportService
type ExportServiceImpl struct{}

// NewExportService creates a new export service
func NewExportService() ExportService {
	return &ExportServiceImpl{}
}

// ExportTranscript writes resp in format
func (s *ExportServiceImpl) ExportTranscript(ctx context.Context, resp *dto.TranscriptResponse, format transcript.Format, writer io.Writer) error {
	if format == transcript.FormatXLSX {
		return export.ToExcel(writer, resp.Turns)
	}

	meta := transcript.Metadata{
		FileName:    resp.FileName,
		Capability:  resp.Capability,
		Model:       resp.Model,
		GeneratedAt: resp.CreatedAt,
	}
	return transcript.Render(writer, format, meta, resp.Turns)
}

// ContentType is the response Content-Type for format
func (s *ExportServiceImpl) ContentType(format transcript.Format) string {
	switch format {
	case transcript.FormatXLSX:
		return xlsxContentType
	case transcript.FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case transcript.FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}
