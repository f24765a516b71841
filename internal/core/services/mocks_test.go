package services_test

import (
	"context"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock StateRepository (local state slot) ---

type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Load(ctx context.Context) (*domain.SystemState, error) {
	args := m.Called(ctx)
	var state *domain.SystemState
	if args.Get(0) != nil {
		state = args.Get(0).(*domain.SystemState)
	}
	return state, args.Error(1)
}

func (m *MockStateRepository) Save(ctx context.Context, state domain.SystemState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

// --- Mock AuthSlotRepository (persisted user identifier) ---

type MockAuthSlotRepository struct {
	mock.Mock
}

func (m *MockAuthSlotRepository) LoadUserID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAuthSlotRepository) SaveUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthSlotRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock MirrorRepository (remote blob endpoint) ---

type MockMirrorRepository struct {
	mock.Mock
}

func (m *MockMirrorRepository) Pull(ctx context.Context) (*domain.SystemState, error) {
	args := m.Called(ctx)
	var state *domain.SystemState
	if args.Get(0) != nil {
		state = args.Get(0).(*domain.SystemState)
	}
	return state, args.Error(1)
}

func (m *MockMirrorRepository) Push(ctx context.Context, state domain.SystemState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}
