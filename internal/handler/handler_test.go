package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/status"
)

// MockService mocks status.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Apply(ctx context.Context, evt domain.Event) bool {
	args := m.Called(ctx, evt)
	return args.Bool(0)
}

func (m *MockService) View(ctx context.Context) domain.PlayerView {
	args := m.Called(ctx)
	return args.Get(0).(domain.PlayerView)
}

func (m *MockService) ViewAt(ctx context.Context) (domain.PlayerView, uint64) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PlayerView), args.Get(1).(uint64)
}

func (m *MockService) CacheStats() status.CacheStats {
	args := m.Called()
	return args.Get(0).(status.CacheStats)
}
