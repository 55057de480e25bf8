package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tripfolio/internal/parser"
	"tripfolio/internal/service"
)

// MockExtractService is a mock implementation of service.ExtractService.
type MockExtractService struct {
	mock.Mock
}

func (m *MockExtractService) Extract(ctx context.Context, input service.ExtractDocumentInput) (*parser.Outcome, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parser.Outcome), args.Error(1)
}
