package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fincore-dev/asset_ledger_app/internal/core/ports/services"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/logging"
)

// batchService runs the externally scheduled ledger passes. Each due entity is
// locked, transacted and flushed individually, so one bad record cannot abort
// a run: a failing entity is transitioned to ERROR in its own follow-up
// transaction and the loop continues. A failure while recording the ERROR
// transition is only logged.
type batchService struct {
	cashInOutSvc portssvc.CashInOutSvcFacade
	cashflowSvc  portssvc.CashflowSvcFacade
	cashflowRepo portsrepo.CashflowReader
	businessDay  portssvc.BusinessDayReaderSvc
	actorID      string
}

// NewBatchService creates the batch entry points. Mutations performed by the
// batch are stamped with actorID.
func NewBatchService(cashInOutSvc portssvc.CashInOutSvcFacade, cashflowSvc portssvc.CashflowSvcFacade, cashflowRepo portsrepo.CashflowReader, businessDay portssvc.BusinessDayReaderSvc, actorID string) portssvc.BatchSvcFacade {
	return &batchService{
		cashInOutSvc: cashInOutSvc,
		cashflowSvc:  cashflowSvc,
		cashflowRepo: cashflowRepo,
		businessDay:  businessDay,
		actorID:      actorID,
	}
}

var _ portssvc.BatchSvcFacade = (*batchService)(nil)

// ClosingCashOut processes every transfer request whose event day is today.
func (s *batchService) ClosingCashOut(ctx context.Context) error {
	logger := logging.GetLoggerFromCtx(ctx)

	requests, err := s.cashInOutSvc.FindUnprocessedCashInOuts(ctx)
	if err != nil {
		return fmt.Errorf("failed to find cash-in/outs for closing: %w", err)
	}
	logger.Info("Closing cash-out run started", slog.Int("count", len(requests)))

	for _, cio := range requests {
		if _, err := s.cashInOutSvc.ProcessCashInOut(ctx, cio.CashInOutID, s.actorID); err != nil {
			logger.Warn("Failed to process cash-in/out, marking as error",
				slog.String("cash_in_out_id", cio.CashInOutID),
				slog.String("error", err.Error()))
			if markErr := s.cashInOutSvc.ErrorCashInOut(ctx, cio.CashInOutID, s.actorID); markErr != nil {
				// Double fault: swallowed so the run continues.
				logger.Error("Failed to record error status for cash-in/out",
					slog.String("cash_in_out_id", cio.CashInOutID),
					slog.String("error", markErr.Error()))
			}
		}
	}

	logger.Info("Closing cash-out run finished")
	return nil
}

// RealizeCashflow settles every cashflow whose value day is today.
func (s *batchService) RealizeCashflow(ctx context.Context) error {
	logger := logging.GetLoggerFromCtx(ctx)

	day, err := s.businessDay.Day(ctx)
	if err != nil {
		return err
	}
	cashflows, err := s.cashflowRepo.FindCashflowsToRealize(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to find cashflows to realize: %w", err)
	}
	logger.Info("Cashflow realization run started", slog.Int("count", len(cashflows)))

	for _, cf := range cashflows {
		if _, err := s.cashflowSvc.RealizeCashflow(ctx, cf.CashflowID, s.actorID); err != nil {
			logger.Warn("Failed to realize cashflow, marking as error",
				slog.String("cashflow_id", cf.CashflowID),
				slog.String("error", err.Error()))
			if markErr := s.cashflowSvc.ErrorCashflow(ctx, cf.CashflowID, s.actorID); markErr != nil {
				logger.Error("Failed to record error status for cashflow",
					slog.String("cashflow_id", cf.CashflowID),
					slog.String("error", markErr.Error()))
			}
		}
	}

	logger.Info("Cashflow realization run finished")
	return nil
}
