package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"audio-transcript/internal/api/v1/dto"
	"audio-transcript/internal/app/model"
)

// MockTranscriptService is a mock implementation of services.TranscriptService
type MockTranscriptService struct {
	mock.Mock
}

func NewMockTranscriptService(t *testing.T) *MockTranscriptService {
	m := &MockTranscriptService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptService) CreateTranscript(ctx context.Context, req *dto.CreateTranscriptRequest) (*dto.TranscriptResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptResponse), args.Error(1)
}

func (m *MockTranscriptService) Capabilities(ctx context.Context) (*dto.CapabilitiesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CapabilitiesResponse), args.Error(1)
}

// MockTranscriber is a mock implementation of services.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	m.On("Model").Return("gemini-2.5-flash").Maybe()
	m.On("CapabilityName").Return("mock").Maybe()
	return m
}

func (m *MockTranscriber) Transcribe(ctx context.Context, payload model.AudioPayload) (model.Transcript, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Transcript), args.Error(1)
}

func (m *MockTranscriber) Model() string {
	return m.Called().String(0)
}

func (m *MockTranscriber) CapabilityName() string {
	return m.Called().String(0)
}
