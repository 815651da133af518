package provider

import (
	"net/http"

	"google.golang.org/genai"

	"audio-transcript/internal/app/model"
)

// Request is everything a capability needs for one transcription call
type Request struct {
	Model       string
	Instruction string
	Audio       model.AudioPayload

	// Output contract
	ResponseMIMEType string
	ResponseSchema   *genai.Schema
}

// Reply is the unparsed answer of a capability
type Reply struct {
	Text         string
	ModelVersion string
	Usage        Usage
}

// Usage reports token accounting when the capability exposes it
type Usage struct {
	PromptTokens   int32 `json:"prompt_tokens,omitempty"`
	ResponseTokens int32 `json:"response_tokens,omitempty"`
	TotalTokens    int32 `json:"total_tokens,omitempty"`
}

// CapabilityConfig is handed to a Creator
type CapabilityConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}
