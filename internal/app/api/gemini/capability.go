package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"

	"audio-transcript/internal/app/api/provider"
	"audio-transcript/internal/app/errors"
)

const (
	Name         = "gemini"
	DefaultModel = "gemini-2.5-flash"
)

// Capability sends audio to the Gemini API through the genai SDK
type Capability struct {
	client *genai.Client
	model  string
}

// NewCapability creates a Gemini client. The API key must be non-empty.
func NewCapability(ctx context.Context, config provider.CapabilityConfig) (*Capability, error) {
	if config.APIKey == "" {
		return nil, errors.MissingSetting("GEMINI_API_KEY")
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: config.HTTPClient,
	}
	if config.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, errors.WrapKind(err, errors.KindConfiguration, "failed to create Gemini client")
	}

	return &Capability{client: client, model: config.Model}, nil
}

// Name implements provider.Capability
func (c *Capability) Name() string {
	return Name
}

// Send implements provider.Capability with a single GenerateContent call
func (c *Capability) Send(ctx context.Context, request *provider.Request) (*provider.Reply, error) {
	audio, err := base64.StdEncoding.DecodeString(request.Audio.Data)
	if err != nil {
		return nil, errors.WrapKind(err, errors.KindInvalidInput, "audio payload is not valid base64")
	}

	model := request.Model
	if model == "" {
		model = c.model
	}

	contents := []*genai.Content{{
		Role: string(genai.RoleUser),
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: request.Audio.MimeType, Data: audio}},
			{Text: request.Instruction},
		},
	}}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: request.ResponseMIMEType,
		ResponseSchema:   request.ResponseSchema,
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generateContent failed: %w", err)
	}

	reply := &provider.Reply{
		Text:         resp.Text(),
		ModelVersion: resp.ModelVersion,
	}
	if u := resp.UsageMetadata; u != nil {
		reply.Usage = provider.Usage{
			PromptTokens:   u.PromptTokenCount,
			ResponseTokens: u.CandidatesTokenCount,
			TotalTokens:    u.TotalTokenCount,
		}
	}
	return reply, nil
}
