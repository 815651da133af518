package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"audio-transcript/internal/app/api/provider"
	"audio-transcript/internal/app/errors"
	"audio-transcript/internal/app/model"
)

const (
	Name = "openai"

	// Whisper does not diarize; every turn is attributed to this speaker
	defaultSpeaker = "Speaker 1"

	// A pause longer than this starts a new turn
	pauseThreshold = 1.5
)

// Capability transcribes through the OpenAI audio API.
// The instruction and response schema of a request are not forwarded; the
// verbose segments are converted into the same JSON turn array instead.
type Capability struct {
	client *openai.Client
	model  string
}

// NewCapability creates an OpenAI client
func NewCapability(config provider.CapabilityConfig) (*Capability, error) {
	if config.APIKey == "" {
		return nil, errors.MissingSetting("OPENAI_API_KEY")
	}
	if config.Model == "" || strings.HasPrefix(config.Model, "gemini") {
		config.Model = openai.Whisper1
	}

	cc := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		cc.BaseURL = config.BaseURL
	}
	if config.HTTPClient != nil {
		cc.HTTPClient = config.HTTPClient
	}

	return &Capability{client: openai.NewClientWithConfig(cc), model: config.Model}, nil
}

// Name implements provider.Capability
func (c *Capability) Name() string {
	return Name
}

// Send implements provider.Capability with a single CreateTranscription call
func (c *Capability) Send(ctx context.Context, request *provider.Request) (*provider.Reply, error) {
	audio, err := base64.StdEncoding.DecodeString(request.Audio.Data)
	if err != nil {
		return nil, errors.WrapKind(err, errors.KindInvalidInput, "audio payload is not valid base64")
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: "audio" + extensionFor(request.Audio.MimeType),
		Reader:   bytes.NewReader(audio),
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("createTranscription failed: %w", err)
	}

	segments := make([]segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, segment{start: s.Start, end: s.End, text: s.Text})
	}
	if len(segments) == 0 && strings.TrimSpace(resp.Text) != "" {
		segments = append(segments, segment{text: resp.Text})
	}

	body, err := json.Marshal(groupSegments(segments))
	if err != nil {
		return nil, err
	}
	return &provider.Reply{Text: string(body), ModelVersion: c.model}, nil
}

type segment struct {
	start, end float64
	text       string
}

// groupSegments folds consecutive segments into turns, splitting on pauses
func groupSegments(segments []segment) model.Transcript {
	turns := model.Transcript{}
	var prevEnd float64
	for i, s := range segments {
		text := strings.TrimSpace(s.text)
		if text == "" {
			continue
		}
		if len(turns) == 0 || (i > 0 && s.start-prevEnd > pauseThreshold) {
			turns = append(turns, model.TranscriptTurn{
				Speaker:   defaultSpeaker,
				Timestamp: formatSeconds(s.start),
			})
		}
		last := &turns[len(turns)-1]
		last.Lines = append(last.Lines, text)
		prevEnd = s.end
	}
	return turns
}

func formatSeconds(sec float64) string {
	d := time.Duration(math.Floor(sec)) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/mp4", "audio/m4a":
		return ".m4a"
	case "audio/flac":
		return ".flac"
	case "audio/ogg":
		return ".ogg"
	default:
		return ".mp3"
	}
}
