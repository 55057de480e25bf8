package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tripfolio/internal/port"
)

// MockDocumentExtractor is a mock implementation of port.DocumentExtractor.
type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) Extract(ctx context.Context, input port.ExtractInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
