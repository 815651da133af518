package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"audio-transcript/internal/app/api/provider"
	"audio-transcript/internal/app/errors"
	"audio-transcript/internal/app/model"
)

const (
	DefaultModel          = "gemini-2.5-flash"
	DefaultCredentialName = "GEMINI_API_KEY"
)

// Config holds the explicit settings of a Requester
type Config struct {
	// APIKey is the pre-provisioned credential. Empty means not configured.
	APIKey string

	// CredentialName is the setting named in the configuration error
	CredentialName string

	Model string
}

// Requester sends one audio payload to a capability and parses the transcript.
// It holds no per-call state and may be shared between goroutines.
type Requester struct {
	config     Config
	capability provider.Capability
	logger     *zap.Logger
	metrics    provider.Metrics
}

// Option customises a Requester
type Option func(*Requester)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(r *Requester) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink
func WithMetrics(metrics provider.Metrics) Option {
	return func(r *Requester) {
		if metrics != nil {
			r.metrics = metrics
		}
	}
}

// NewRequester creates a requester bound to capability
func NewRequester(config Config, capability provider.Capability, opts ...Option) *Requester {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.CredentialName == "" {
		config.CredentialName = DefaultCredentialName
	}

	r := &Requester{
		config:     config,
		capability: capability,
		logger:     zap.NewNop(),
		metrics:    provider.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Model returns the model requested from the capability
func (r *Requester) Model() string {
	return r.config.Model
}

// CapabilityName returns the name of the bound capability
func (r *Requester) CapabilityName() string {
	if r.capability == nil {
		return ""
	}
	return r.capability.Name()
}

// Transcribe issues exactly one request for payload and returns the validated transcript.
// A partial transcript is never returned.
func (r *Requester) Transcribe(ctx context.Context, payload model.AudioPayload) (model.Transcript, error) {
	name := r.CapabilityName()

	if r.config.APIKey == "" {
		err := errors.MissingSetting(r.config.CredentialName)
		r.metrics.RecordFailure(name, string(errors.KindConfiguration))
		return nil, err
	}
	if r.capability == nil {
		err := errors.ErrInvalidConfig.With(fmt.Errorf("no transcription capability configured"))
		r.metrics.RecordFailure(name, string(errors.KindConfiguration))
		return nil, err
	}

	logger := r.logger.With(
		zap.String("capability", name),
		zap.String("model", r.config.Model),
		zap.String("mime_type", payload.MimeType),
		zap.Int("payload_bytes", payload.EncodedSize()),
	)
	logger.Debug("sending transcript request")

	start := time.Now()
	reply, err := r.capability.Send(ctx, r.buildRequest(payload))
	if err != nil {
		if errors.KindOf(err) == errors.KindUnknown {
			err = errors.ErrRequestFailed.With(err)
		}
		logger.Error("error processing transcript", zap.Error(err))
		r.metrics.RecordFailure(name, string(errors.KindOf(err)))
		return nil, err
	}

	turns, err := ParseReply(reply.Text)
	if err != nil {
		logger.Error("error parsing transcript reply",
			zap.Error(err),
			zap.Int("reply_bytes", len(reply.Text)),
		)
		r.metrics.RecordFailure(name, string(errors.KindOf(err)))
		return nil, err
	}

	latency := time.Since(start)
	logger.Debug("transcript received",
		zap.Int("turns", len(turns)),
		zap.Duration("latency", latency),
		zap.String("model_version", reply.ModelVersion),
		zap.Int32("total_tokens", reply.Usage.TotalTokens),
	)
	r.metrics.RecordSuccess(name, latency, len(turns))
	return turns, nil
}

func (r *Requester) buildRequest(payload model.AudioPayload) *provider.Request {
	return &provider.Request{
		Model:            r.config.Model,
		Instruction:      Instruction,
		Audio:            payload,
		ResponseMIMEType: ResponseMIMEType,
		ResponseSchema:   TranscriptSchema(),
	}
}

// ParseReply decodes a capability reply into a transcript.
// Timestamps in H:MM:SS or MM:SS form are widened to HH:MM:SS before validation.
func ParseReply(text string) (model.Transcript, error) {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return nil, errors.ErrResponseInvalid.With(fmt.Errorf("empty reply"))
	}

	var turns model.Transcript
	if err := json.Unmarshal([]byte(text), &turns); err != nil {
		return nil, errors.ErrResponseInvalid.With(err)
	}
	if turns == nil {
		return nil, errors.ErrResponseInvalid.With(fmt.Errorf("expected a JSON array, got %.20q", text))
	}
	if err := checkFieldNames([]byte(text)); err != nil {
		return nil, errors.ErrResponseInvalid.With(err)
	}

	for i := range turns {
		if ts, ok := model.NormalizeTimestamp(turns[i].Timestamp); ok {
			turns[i].Timestamp = ts
		}
	}
	if err := turns.Validate(); err != nil {
		return nil, errors.ErrResponseInvalid.With(err)
	}
	return turns, nil
}

// turnFields are the schema keys of a turn. encoding/json matches keys
// case-insensitively, so a key differing only in case is rejected here.
// Unknown keys are ignored.
var turnFields = map[string]bool{"speaker": true, "lines": true, "timestamp": true}

func checkFieldNames(data []byte) error {
	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(data, &objects); err != nil {
		return err
	}
	for i, obj := range objects {
		for key := range obj {
			if !turnFields[key] && turnFields[strings.ToLower(key)] {
				return fmt.Errorf("turn %d: field %q must be spelled %q", i, key, strings.ToLower(key))
			}
		}
	}
	return nil
}

// stripCodeFence removes a surrounding ```json ... ``` block
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}
