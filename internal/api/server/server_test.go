package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	v1routes "audio-transcript/internal/api/v1/routes"
	"audio-transcript/internal/api/v1/services"
	"audio-transcript/internal/app/api/provider"
	"audio-transcript/internal/app/testutil"
	"audio-transcript/internal/app/transcript"
	"audio-transcript/internal/config"
)

func newTestServer(t *testing.T, capability provider.Capability, apiKey string) *Server {
	settings := config.DefaultSettings()
	settings.Server.Environment = "test"

	registry := prometheus.NewRegistry()
	metrics, err := provider.NewPrometheusMetrics(registry)
	require.NoError(t, err)

	requester := transcript.NewRequester(transcript.Config{APIKey: apiKey}, capability, transcript.WithMetrics(metrics))
	container := &v1routes.ServiceContainer{
		TranscriptService: services.NewTranscriptService(requester, settings.MaxUploadBytes(), zap.NewNop()),
		ExportService:     services.NewExportService(),
	}

	return NewServer(ConfigFromSettings(settings, "test", requester.CapabilityName()), container, registry, zap.NewNop())
}

func upload(t *testing.T, srv *Server, fileName, contentType string, content []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcripts", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testutil.NewMockCapability(), testutil.TestAPIKey)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "mock", body["capability"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestUploadEndToEnd(t *testing.T) {
	capability := testutil.NewMockCapability().ReplyWith(testutil.HelloThereReply)
	srv := newTestServer(t, capability, testutil.TestAPIKey)

	rec := upload(t, srv, "hello.mp3", "audio/mpeg", testutil.SilenceMP3)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Speaker 1:\nHello there.", body["text"])
	assert.Equal(t, 1, capability.SendCount())
	assert.Equal(t, testutil.SilencePayload(), capability.Requests()[0].Audio)

	metrics := httptest.NewRecorder()
	srv.Router().ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `atp_transcript_requests_total{capability="mock",outcome="success"} 1`)
}

func TestUploadRejectsNonMP3(t *testing.T) {
	capability := testutil.NewMockCapability()
	srv := newTestServer(t, capability, testutil.TestAPIKey)

	rec := upload(t, srv, "clip.wav", "audio/wav", []byte("RIFF0000WAVE"))

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Contains(t, rec.Body.String(), "please select an MP3 file")
	assert.Equal(t, 0, capability.SendCount())
}

func TestUploadWithoutAPIKey(t *testing.T) {
	capability := testutil.NewMockCapability()
	srv := newTestServer(t, capability, "")

	rec := upload(t, srv, "hello.mp3", "audio/mpeg", testutil.SilenceMP3)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "GEMINI_API_KEY environment variable not set")
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
	assert.Equal(t, 0, capability.SendCount())
}

func TestUploadMalformedReply(t *testing.T) {
	srv := newTestServer(t, testutil.NewMockCapability().ReplyWith("not json"), testutil.TestAPIKey)

	rec := upload(t, srv, "hello.mp3", "audio/mpeg", testutil.SilenceMP3)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"malformed"`)
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t, testutil.NewMockCapability(), testutil.TestAPIKey)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transcriptions", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"not_found"`)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, testutil.NewMockCapability(), testutil.TestAPIKey)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/transcripts", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestSwaggerDoc(t *testing.T) {
	srv := newTestServer(t, testutil.NewMockCapability(), testutil.TestAPIKey)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/transcripts")
}
