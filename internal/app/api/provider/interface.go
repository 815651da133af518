package provider

import (
	"context"
	"time"
)

// Capability is a remote model that can turn audio into structured text.
// Implementations make exactly one outbound call per Send and never retry.
type Capability interface {
	// Send issues the request and returns the raw reply text
	Send(ctx context.Context, request *Request) (*Reply, error)

	// Name identifies the capability in logs and metrics
	Name() string
}

// Metrics records the outcome of transcript requests
type Metrics interface {
	// Record a successful request
	RecordSuccess(capability string, latency time.Duration, turns int)

	// Record a failed request
	RecordFailure(capability string, kind string)
}
