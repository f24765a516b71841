package services

import (
	"context"
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/dto"
)

// ledgerService orchestrates ledger mutations: it applies a pure domain
// operation to a copy of the user's ledger, commits the result through the
// state manager and hands the new snapshot to the push queue. The push is
// best-effort and never blocks or fails the mutation.
type ledgerService struct {
	BaseService
	stateSvc portssvc.StateSvcFacade
	syncSvc  portssvc.SyncSvcFacade
}

// NewLedgerService creates the ledger mutation service.
func NewLedgerService(stateSvc portssvc.StateSvcFacade, syncSvc portssvc.SyncSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{stateSvc: stateSvc, syncSvc: syncSvc}
}

func (s *ledgerService) GetLedger(ctx context.Context, userID string) (domain.Ledger, error) {
	return s.stateSvc.GetLedger(ctx, userID)
}

func (s *ledgerService) RecordSale(ctx context.Context, userID string, req dto.RecordSaleRequest) (*domain.Transaction, error) {
	occurredAt := req.Date
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	ledger, err := s.stateSvc.GetLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, txn, err := ledger.RecordSale(req.Type, req.Amount, req.Sims, occurredAt)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, userID, next); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		"transaction_id", txn.ID,
		"sim_type", string(txn.Type),
		"amount", txn.Amount.String(),
	)
	return &txn, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	ledger, err := s.stateSvc.GetLedger(ctx, userID)
	if err != nil {
		return err
	}

	next, found := ledger.DeleteTransaction(transactionID)
	if !found {
		// Deleting an unknown ID is a no-op, not an error.
		s.LogDebug(ctx, "Delete of unknown transaction ignored", "transaction_id", transactionID)
		return nil
	}

	if err := s.commit(ctx, userID, next); err != nil {
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID)
	return nil
}

func (s *ledgerService) AdjustStock(ctx context.Context, userID string, req dto.AdjustStockRequest) (domain.Ledger, error) {
	ledger, err := s.stateSvc.GetLedger(ctx, userID)
	if err != nil {
		return domain.Ledger{}, err
	}

	next, err := ledger.AdjustStock(req.Type, req.Delta, time.Now())
	if err != nil {
		return domain.Ledger{}, err
	}

	if err := s.commit(ctx, userID, next); err != nil {
		return domain.Ledger{}, err
	}

	s.LogInfo(ctx, "Stock adjusted", "sim_type", string(req.Type), "delta", req.Delta)
	return next, nil
}

func (s *ledgerService) AdjustDamaged(ctx context.Context, userID string, req dto.AdjustDamagedRequest) (domain.Ledger, error) {
	ledger, err := s.stateSvc.GetLedger(ctx, userID)
	if err != nil {
		return domain.Ledger{}, err
	}

	next, err := ledger.AdjustDamaged(req.Type, req.Delta)
	if err != nil {
		return domain.Ledger{}, err
	}

	if err := s.commit(ctx, userID, next); err != nil {
		return domain.Ledger{}, err
	}

	s.LogInfo(ctx, "Damaged count adjusted", "sim_type", string(req.Type), "delta", req.Delta)
	return next, nil
}

func (s *ledgerService) RecordFuel(ctx context.Context, userID string, req dto.RecordFuelRequest) (*domain.FuelLog, error) {
	occurredAt := req.Date
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	fuelType := req.Type
	if fuelType == "" {
		fuelType = domain.DefaultFuelType
	}

	ledger, err := s.stateSvc.GetLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, entry, err := ledger.RecordFuel(req.Amount, fuelType, occurredAt)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, userID, next); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Fuel entry recorded", "fuel_log_id", entry.ID, "amount", entry.Amount.String())
	return &entry, nil
}

func (s *ledgerService) UpdateWeeklyTarget(ctx context.Context, userID string, req dto.UpdateWeeklyTargetRequest) error {
	ledger, err := s.stateSvc.GetLedger(ctx, userID)
	if err != nil {
		return err
	}

	next, err := ledger.WithWeeklyTarget(req.WeeklyTarget)
	if err != nil {
		return err
	}

	if err := s.commit(ctx, userID, next); err != nil {
		return err
	}

	s.LogInfo(ctx, "Weekly target updated", "target", req.WeeklyTarget.String())
	return nil
}

func (s *ledgerService) commit(ctx context.Context, userID string, ledger domain.Ledger) error {
	snapshot, err := s.stateSvc.CommitLedger(ctx, userID, ledger)
	if err != nil {
		return err
	}
	s.syncSvc.EnqueuePush(snapshot)
	return nil
}
