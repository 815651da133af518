package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"audio-transcript/internal/app/api/provider"
)

// MockCapability is a testify mock of provider.Capability.
// It also keeps the requests it received for inspection.
type MockCapability struct {
	mock.Mock
	mu       sync.Mutex
	requests []*provider.Request
}

// NewMockCapability creates a mock that reports itself as "mock"
func NewMockCapability() *MockCapability {
	m := &MockCapability{}
	m.On("Name").Return("mock").Maybe()
	return m
}

// Send implements provider.Capability
func (m *MockCapability) Send(ctx context.Context, request *provider.Request) (*provider.Reply, error) {
	m.mu.Lock()
	m.requests = append(m.requests, request)
	m.mu.Unlock()

	args := m.Called(ctx, request)
	var reply *provider.Reply
	if r := args.Get(0); r != nil {
		reply = r.(*provider.Reply)
	}
	return reply, args.Error(1)
}

// Name implements provider.Capability
func (m *MockCapability) Name() string {
	args := m.Called()
	return args.String(0)
}

// ReplyWith makes every Send return text
func (m *MockCapability) ReplyWith(text string) *MockCapability {
	m.On("Send", mock.Anything, mock.Anything).Return(&provider.Reply{Text: text}, nil)
	return m
}

// FailWith makes every Send return err
func (m *MockCapability) FailWith(err error) *MockCapability {
	m.On("Send", mock.Anything, mock.Anything).Return(nil, err)
	return m
}

// Requests returns the requests received so far
func (m *MockCapability) Requests() []*provider.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*provider.Request(nil), m.requests...)
}

// SendCount returns how many outbound attempts were made
func (m *MockCapability) SendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
