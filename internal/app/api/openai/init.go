package openai

import (
	"context"

	"audio-transcript/internal/app/api/provider"
)

func init() {
	provider.RegisterCapability(Name, createOpenAICapability)
}

func createOpenAICapability(ctx context.Context, config provider.CapabilityConfig) (provider.Capability, error) {
	return NewCapability(config)
}
