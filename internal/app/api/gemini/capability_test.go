package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-transcript/internal/app/api/provider"
	"audio-transcript/internal/app/errors"
	"audio-transcript/internal/app/model"
	"audio-transcript/internal/app/testutil"
	"audio-transcript/internal/app/transcript"
)

type capturedRequest struct {
	path string
	body string
}

// Mock Gemini API server for testing
func createMockGeminiServer(t *testing.T, status int, response interface{}) (*httptest.Server, *[]capturedRequest) {
	var mu sync.Mutex
	var captured []capturedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		captured = append(captured, capturedRequest{path: r.URL.Path, body: string(body)})
		mu.Unlock()

		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(server.Close)

	return server, &captured
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": []interface{}{map[string]interface{}{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
		"modelVersion": "gemini-2.5-flash-001",
		"usageMetadata": map[string]interface{}{
			"promptTokenCount":     120,
			"candidatesTokenCount": 30,
			"totalTokenCount":      150,
		},
	}
}

func newTestCapability(t *testing.T, server *httptest.Server) *Capability {
	capability, err := NewCapability(context.Background(), provider.CapabilityConfig{
		APIKey:     testutil.TestAPIKey,
		BaseURL:    server.URL + "/",
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)
	return capability
}

func testRequest(payload model.AudioPayload) *provider.Request {
	return &provider.Request{
		Model:            DefaultModel,
		Instruction:      transcript.Instruction,
		Audio:            payload,
		ResponseMIMEType: transcript.ResponseMIMEType,
		ResponseSchema:   transcript.TranscriptSchema(),
	}
}

func TestCapabilitySend(t *testing.T) {
	server, captured := createMockGeminiServer(t, http.StatusOK, successResponse(testutil.HelloThereReply))
	capability := newTestCapability(t, server)
	payload := testutil.SilencePayload()

	reply, err := capability.Send(context.Background(), testRequest(payload))
	require.NoError(t, err)

	assert.Equal(t, testutil.HelloThereReply, reply.Text)
	assert.Equal(t, "gemini-2.5-flash-001", reply.ModelVersion)
	assert.Equal(t, int32(150), reply.Usage.TotalTokens)

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Contains(t, req.path, "gemini-2.5-flash:generateContent")
	assert.Contains(t, req.body, payload.Data)
	assert.Contains(t, req.body, "audio/mpeg")
	assert.Contains(t, req.body, "application/json")
	assert.Contains(t, req.body, "HH:MM:SS")
}

func TestCapabilitySendAPIError(t *testing.T) {
	server, _ := createMockGeminiServer(t, http.StatusTooManyRequests, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    429,
			"message": "Resource has been exhausted",
			"status":  "RESOURCE_EXHAUSTED",
		},
	})
	capability := newTestCapability(t, server)

	_, err := capability.Send(context.Background(), testRequest(testutil.SilencePayload()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generateContent failed")
	assert.Equal(t, errors.KindUnknown, errors.KindOf(err))
}

func TestCapabilitySendInvalidBase64(t *testing.T) {
	server, captured := createMockGeminiServer(t, http.StatusOK, successResponse("[]"))
	capability := newTestCapability(t, server)

	_, err := capability.Send(context.Background(), testRequest(model.AudioPayload{
		MimeType: "audio/mpeg",
		Data:     "data:audio/mpeg;base64,???",
	}))
	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidInput, errors.KindOf(err))
	assert.Empty(t, *captured)
}

func TestNewCapabilityRequiresKey(t *testing.T) {
	_, err := NewCapability(context.Background(), provider.CapabilityConfig{})
	require.Error(t, err)
	assert.Equal(t, errors.KindConfiguration, errors.KindOf(err))
}

func TestCapabilityEndToEndWithRequester(t *testing.T) {
	server, _ := createMockGeminiServer(t, http.StatusOK, successResponse(testutil.ConversationReply))
	capability := newTestCapability(t, server)

	requester := transcript.NewRequester(transcript.Config{APIKey: testutil.TestAPIKey}, capability)
	result, err := requester.Transcribe(context.Background(), testutil.SilencePayload())
	require.NoError(t, err)

	assert.Equal(t, testutil.ConversationTranscript(), result)
}

func TestCapabilityEndToEndNotJSON(t *testing.T) {
	server, _ := createMockGeminiServer(t, http.StatusOK, successResponse("not json"))
	capability := newTestCapability(t, server)

	requester := transcript.NewRequester(transcript.Config{APIKey: testutil.TestAPIKey}, capability)
	_, err := requester.Transcribe(context.Background(), testutil.SilencePayload())
	require.Error(t, err)
	assert.Equal(t, errors.KindMalformed, errors.KindOf(err))
}

func TestRegistered(t *testing.T) {
	assert.Contains(t, provider.ListRegisteredCapabilities(), Name)
}
