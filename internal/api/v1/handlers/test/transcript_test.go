package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio-transcript/internal/api/middleware"
	"audio-transcript/internal/api/v1/dto"
	"audio-transcript/internal/api/v1/handlers"
	"audio-transcript/internal/api/v1/services"
	apperrors "audio-transcript/internal/app/errors"
	"audio-transcript/internal/app/testutil"
	"audio-transcript/internal/app/transcript"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *testutil.MockTranscriptService) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID(zap.NewNop()))
	router.Use(middleware.ErrorHandler(zap.NewNop()))

	mockService := testutil.NewMockTranscriptService(t)
	handler := handlers.NewTranscriptHandler(mockService, services.NewExportService())
	router.POST("/api/v1/transcripts", handler.Create)
	router.GET("/api/v1/capabilities", handler.Capabilities)
	return router, mockService
}

func uploadRequest(t *testing.T, fileName string, content []byte, fields map[string]string) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if fileName != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
		header.Set("Content-Type", "audio/mpeg")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcripts", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func sampleResponse() *dto.TranscriptResponse {
	turns := testutil.ConversationTranscript()
	return &dto.TranscriptResponse{
		FileName:   "meeting.mp3",
		FileSize:   int64(len(testutil.SilenceMP3)),
		MimeType:   "audio/mpeg",
		Capability: "gemini",
		Model:      "gemini-2.5-flash",
		Turns:      turns,
		Speakers:   turns.Speakers(),
		LineCount:  turns.LineCount(),
		Text:       transcript.RenderText(turns),
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTranscriptHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		fileName       string
		fields         map[string]string
		setupMocks     func(*testutil.MockTranscriptService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:     "successful transcript",
			fileName: "meeting.mp3",
			setupMocks: func(ms *testutil.MockTranscriptService) {
				ms.On("CreateTranscript", mock.Anything, mock.MatchedBy(func(req *dto.CreateTranscriptRequest) bool {
					return req.File != nil && req.File.Filename == "meeting.mp3"
				})).Return(sampleResponse(), nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "meeting.mp3", body["file_name"])
				assert.Len(t, body["turns"], 3)
				assert.Equal(t, []interface{}{"Speaker 1", "Speaker 2"}, body["speakers"])
			},
		},
		{
			name:           "validation error - missing file",
			fields:         map[string]string{"format": "json"},
			setupMocks:     func(ms *testutil.MockTranscriptService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				details := body["details"].(map[string]interface{})
				assert.Equal(t, "is required", details["file"])
				assert.NotEmpty(t, body["request_id"])
			},
		},
		{
			name:           "validation error - unknown format",
			fileName:       "meeting.mp3",
			fields:         map[string]string{"format": "pdf"},
			setupMocks:     func(ms *testutil.MockTranscriptService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				details := body["details"].(map[string]interface{})
				assert.Contains(t, details["format"], "json text markdown xlsx")
			},
		},
		{
			name:     "not an mp3",
			fileName: "notes.wav",
			setupMocks: func(ms *testutil.MockTranscriptService) {
				ms.On("CreateTranscript", mock.Anything, mock.Anything).
					Return(nil, apperrors.ErrUnsupportedMediaType)
			},
			expectedStatus: http.StatusUnsupportedMediaType,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "unsupported_media_type", body["kind"])
				assert.Equal(t, "please select an MP3 file", body["message"])
			},
		},
		{
			name:     "missing credential",
			fileName: "meeting.mp3",
			setupMocks: func(ms *testutil.MockTranscriptService) {
				ms.On("CreateTranscript", mock.Anything, mock.Anything).
					Return(nil, apperrors.MissingSetting("GEMINI_API_KEY"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "configuration", body["code"])
				assert.Contains(t, body["message"], "GEMINI_API_KEY")
			},
		},
		{
			name:     "remote failure",
			fileName: "meeting.mp3",
			setupMocks: func(ms *testutil.MockTranscriptService) {
				ms.On("CreateTranscript", mock.Anything, mock.Anything).
					Return(nil, apperrors.ErrRequestFailed.With(fmt.Errorf("quota exceeded")))
			},
			expectedStatus: http.StatusBadGateway,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "bad_gateway", body["kind"])
				assert.Equal(t, "remote", body["code"])
				assert.Equal(t, "failed to process transcript: API error: quota exceeded", body["message"])
			},
		},
		{
			name:     "malformed reply",
			fileName: "meeting.mp3",
			setupMocks: func(ms *testutil.MockTranscriptService) {
				ms.On("CreateTranscript", mock.Anything, mock.Anything).
					Return(nil, apperrors.ErrResponseInvalid)
			},
			expectedStatus: http.StatusBadGateway,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "malformed", body["code"])
			},
		},
		{
			name:     "unexpected error",
			fileName: "meeting.mp3",
			setupMocks: func(ms *testutil.MockTranscriptService) {
				ms.On("CreateTranscript", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("nil pointer somewhere"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "internal", body["kind"])
				assert.Equal(t, "Internal server error", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupTestRouter(t)
			tt.setupMocks(mockService)

			req := uploadRequest(t, tt.fileName, testutil.SilenceMP3, tt.fields)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, decode(t, rec))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestTranscriptHandler_CreateTextFormat(t *testing.T) {
	router, mockService := setupTestRouter(t)
	mockService.On("CreateTranscript", mock.Anything, mock.Anything).Return(sampleResponse(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "meeting.mp3", testutil.SilenceMP3, map[string]string{"format": "text"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, transcript.RenderText(testutil.ConversationTranscript())+"\n", rec.Body.String())
}

func TestTranscriptHandler_CreateMarkdownFormat(t *testing.T) {
	router, mockService := setupTestRouter(t)
	mockService.On("CreateTranscript", mock.Anything, mock.Anything).Return(sampleResponse(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "meeting.mp3", testutil.SilenceMP3, map[string]string{"format": "markdown"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# Transcript: meeting.mp3")
	assert.Contains(t, rec.Body.String(), "**[00:00:04] Speaker 2**")
}

func TestTranscriptHandler_CreateXLSXFormat(t *testing.T) {
	router, mockService := setupTestRouter(t)
	mockService.On("CreateTranscript", mock.Anything, mock.Anything).Return(sampleResponse(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "meeting.mp3", testutil.SilenceMP3, map[string]string{"format": "xlsx"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="meeting.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", rec.Body.String()[:2])
}

func TestTranscriptHandler_Capabilities(t *testing.T) {
	router, mockService := setupTestRouter(t)
	mockService.On("Capabilities", mock.Anything).Return(&dto.CapabilitiesResponse{
		Active:     "gemini",
		Model:      "gemini-2.5-flash",
		Registered: []string{"gemini", "openai"},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/capabilities", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "gemini", body["active"])
	assert.Equal(t, []interface{}{"gemini", "openai"}, body["registered"])
}
