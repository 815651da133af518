package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"

	"audio-transcript/internal/app/errors"
	"audio-transcript/internal/app/model"
)

// Format is an output format for a transcript
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatXLSX     Format = "xlsx"
)

var formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatXLSX}

// ParseFormat accepts a format name, case-insensitive. "md" and "txt" are aliases.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "txt":
		return FormatText, nil
	case "md":
		return FormatMarkdown, nil
	default:
		if lo.Contains(formats, f) {
			return f, nil
		}
	}
	return "", errors.InvalidField("format", fmt.Sprintf("%q is not one of %s", s, strings.Join(lo.Map(formats, func(f Format, _ int) string {
		return string(f)
	}), ", ")))
}

// Extension is the file extension used when writing this format
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	case FormatXLSX:
		return ".xlsx"
	default:
		return ".txt"
	}
}

// Metadata describes where a transcript came from
type Metadata struct {
	FileName    string
	Capability  string
	Model       string
	GeneratedAt time.Time
}

// RenderText renders the copy-to-clipboard form: "Speaker:" then its lines,
// turns separated by a blank line.
func RenderText(t model.Transcript) string {
	return strings.Join(lo.Map(t, func(turn model.TranscriptTurn, _ int) string {
		return turn.Speaker + ":\n" + strings.Join(turn.Lines, "\n")
	}), "\n\n")
}

// RenderMarkdown renders a document with a metadata header
func RenderMarkdown(meta Metadata, t model.Transcript) string {
	var b strings.Builder

	title := "Transcript"
	if meta.FileName != "" {
		title += ": " + meta.FileName
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if meta.Capability != "" {
		fmt.Fprintf(&b, "- Capability: %s\n", meta.Capability)
	}
	if meta.Model != "" {
		fmt.Fprintf(&b, "- Model: %s\n", meta.Model)
	}
	if !meta.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "- Generated: %s\n", meta.GeneratedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(&b, "- Speakers: %s\n", strings.Join(t.Speakers(), ", "))
	fmt.Fprintf(&b, "- Turns: %d\n", len(t))

	for _, turn := range t {
		fmt.Fprintf(&b, "\n**[%s] %s**\n\n", turn.Timestamp, turn.Speaker)
		for _, line := range turn.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderJSON writes the transcript as an indented JSON array
func RenderJSON(w io.Writer, t model.Transcript) error {
	if t == nil {
		t = model.Transcript{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// Render writes t in one of the text formats. XLSX is handled by the export package.
func Render(w io.Writer, format Format, meta Metadata, t model.Transcript) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, RenderText(t)+"\n")
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, RenderMarkdown(meta, t))
		return err
	case FormatJSON:
		return RenderJSON(w, t)
	default:
		return errors.InvalidField("format", fmt.Sprintf("%s cannot be rendered as text", format))
	}
}
