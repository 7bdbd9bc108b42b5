package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vitorsp/perfboard/internal/fide"
)

// MockFIDEClient is a mock implementation of fide.ClientInterface
type MockFIDEClient struct {
	mock.Mock
}

func (m *MockFIDEClient) FetchRating(ctx context.Context, fideID string) (*fide.Rating, error) {
	args := m.Called(ctx, fideID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fide.Rating), args.Error(1)
}
