package gemini

import (
	"context"

	"audio-transcript/internal/app/api/provider"
)

func init() {
	provider.RegisterCapability(Name, createGeminiCapability)
}

func createGeminiCapability(ctx context.Context, config provider.CapabilityConfig) (provider.Capability, error) {
	return NewCapability(ctx, config)
}
