package handlers_test

import (
	"context"
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionService ---

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionService) Restore(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockSessionService) Current(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock LedgerService ---

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedger(ctx context.Context, userID string) (domain.Ledger, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Ledger), args.Error(1)
}

func (m *MockLedgerService) RecordSale(ctx context.Context, userID string, req dto.RecordSaleRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

func (m *MockLedgerService) AdjustStock(ctx context.Context, userID string, req dto.AdjustStockRequest) (domain.Ledger, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.Ledger), args.Error(1)
}

func (m *MockLedgerService) AdjustDamaged(ctx context.Context, userID string, req dto.AdjustDamagedRequest) (domain.Ledger, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.Ledger), args.Error(1)
}

func (m *MockLedgerService) RecordFuel(ctx context.Context, userID string, req dto.RecordFuelRequest) (*domain.FuelLog, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FuelLog), args.Error(1)
}

func (m *MockLedgerService) UpdateWeeklyTarget(ctx context.Context, userID string, req dto.UpdateWeeklyTargetRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock MetricsService ---

type MockMetricsService struct {
	mock.Mock
}

func (m *MockMetricsService) DaySummary(ctx context.Context, userID string, day time.Time) (*domain.DaySummary, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DaySummary), args.Error(1)
}

func (m *MockMetricsService) Weekly(ctx context.Context, userID string, day time.Time) (*domain.WeeklyMetrics, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyMetrics), args.Error(1)
}

var _ portssvc.MetricsSvcFacade = (*MockMetricsService)(nil)

// --- Mock SyncService ---

type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSyncService) EnqueuePush(state domain.SystemState) {
	m.Called(state)
}

func (m *MockSyncService) Status() portssvc.SyncStatus {
	args := m.Called()
	return args.Get(0).(portssvc.SyncStatus)
}

func (m *MockSyncService) Close() {
	m.Called()
}

var _ portssvc.SyncSvcFacade = (*MockSyncService)(nil)
