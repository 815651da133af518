//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"audio-transcript/internal/api/server"
	v1routes "audio-transcript/internal/api/v1/routes"
	"audio-transcript/internal/api/v1/services"
	_ "audio-transcript/internal/app/api/gemini"
	_ "audio-transcript/internal/app/api/openai"
	"audio-transcript/internal/app/api/provider"
	"audio-transcript/internal/app/errors"
	"audio-transcript/internal/app/transcript"
)

// provideCapabilityConfig resolves the credential of the configured capability
func provideCapabilityConfig(opts Options) provider.CapabilityConfig {
	settings := opts.settings()
	key, _ := opts.keys().For(settings.Capability)
	return provider.CapabilityConfig{
		APIKey:     key,
		Model:      settings.Model,
		BaseURL:    settings.BaseURL,
		HTTPClient: &http.Client{Timeout: settings.RequestTimeout()},
	}
}

// provideCapability builds the capability. A missing credential yields a
// stand-in so the failure surfaces as a configuration error per request.
func provideCapability(ctx context.Context, opts Options, cfg provider.CapabilityConfig) (provider.Capability, error) {
	name := opts.settings().Capability
	if cfg.APIKey == "" {
		_, variable := opts.keys().For(name)
		return provider.Unavailable(name, errors.MissingSetting(variable)), nil
	}
	return provider.NewCapability(ctx, name, cfg)
}

func provideLogger(opts Options) *zap.Logger {
	return opts.logger()
}

func provideRequester(opts Options, capability provider.Capability, metrics provider.Metrics, logger *zap.Logger) *transcript.Requester {
	settings := opts.settings()
	key, variable := opts.keys().For(settings.Capability)
	return transcript.NewRequester(transcript.Config{
		APIKey:         key,
		CredentialName: variable,
		Model:          settings.Model,
	}, capability, transcript.WithLogger(logger), transcript.WithMetrics(metrics))
}

func provideRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}

func provideMetrics(registry *prometheus.Registry) (provider.Metrics, error) {
	return provider.NewPrometheusMetrics(registry)
}

func provideServiceContainer(opts Options, requester *transcript.Requester, logger *zap.Logger) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		TranscriptService: services.NewTranscriptService(requester, opts.settings().MaxUploadBytes(), logger),
		ExportService:     services.NewExportService(),
	}
}

func provideServer(opts Options, container *v1routes.ServiceContainer, requester *transcript.Requester, registry *prometheus.Registry, logger *zap.Logger) *server.Server {
	cfg := server.ConfigFromSettings(opts.settings(), opts.Version, requester.CapabilityName())
	return server.NewServer(cfg, container, registry, logger)
}

var requesterSet = wire.NewSet(provideCapabilityConfig, provideCapability, provideLogger, provideRequester)

// InitializeRequester builds a requester for one-shot CLI use, without metrics
func InitializeRequester(ctx context.Context, opts Options) (*transcript.Requester, error) {
	wire.Build(requesterSet, wire.InterfaceValue(new(provider.Metrics), provider.NoopMetrics{}))
	return &transcript.Requester{}, nil
}

// InitializeServer builds the HTTP API with Prometheus metrics
func InitializeServer(ctx context.Context, opts Options) (*server.Server, error) {
	wire.Build(requesterSet, provideRegistry, provideMetrics, provideServiceContainer, provideServer)
	return &server.Server{}, nil
}
