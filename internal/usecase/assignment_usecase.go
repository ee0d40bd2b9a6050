package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/acctledger/internal/domain"
	"github.com/iho/acctledger/internal/infrastructure/metrics"
)

// AssignmentUseCase matches clearing transactions (receipts, payments)
// against clearable ones (invoices, bills), tracking partial clearance.
type AssignmentUseCase struct {
	txManager       TxManager
	transactionRepo TransactionRepository
	entryRepo       EntryRepository
	assignmentRepo  AssignmentRepository
	idGen           IDGenerator
	retrier         Retrier
	logger          zerolog.Logger
	metrics         *metrics.Metrics
}

// NewAssignmentUseCase creates a new AssignmentUseCase.
func NewAssignmentUseCase(
	txManager TxManager,
	transactionRepo TransactionRepository,
	entryRepo EntryRepository,
	assignmentRepo AssignmentRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		txManager:       txManager,
		transactionRepo: transactionRepo,
		entryRepo:       entryRepo,
		assignmentRepo:  assignmentRepo,
		idGen:           idGen,
		logger:          logger,
		metrics:         m,
	}
}

// WithRetrier makes Assign and Unassign replay their write transactions on
// transient storage conflicts instead of surfacing them.
func (uc *AssignmentUseCase) WithRetrier(retrier Retrier) *AssignmentUseCase {
	uc.retrier = retrier
	return uc
}

// AssignInput carries one clearing attempt. Strategy defaults to FIFO by
// folio date. Rate is required when clearing and candidates differ in
// currency; candidate outstanding balances are translated into the clearing
// currency for allocation, and each resulting assignment records the
// allocation in both currencies (clearing-side Amount, clearable-side
// ClearableAmount translated back through the same rate).
type AssignInput struct {
	ClearingID   string
	CandidateIDs []string
	Strategy     domain.AllocationStrategy
	Rate         *domain.ExchangeRate
}

// Assign spreads the clearing transaction's outstanding balance over the
// candidates per the strategy. Outstanding balances are re-read under the
// same database transaction the assignment records are written in, closing
// the check-then-act race against concurrent assignment attempts. On any
// error every assignment staged in this call rolls back.
func (uc *AssignmentUseCase) Assign(ctx context.Context, input AssignInput) ([]*domain.Assignment, error) {
	for _, candidateID := range input.CandidateIDs {
		if candidateID == input.ClearingID {
			return nil, domain.ErrSelfClearance
		}
	}

	strategy := input.Strategy
	if strategy == nil {
		strategy = domain.FIFOStrategy
	}

	now := time.Now().UTC()

	var assignments []*domain.Assignment
	write := func() error {
		assignments = nil

		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		// Lock every involved transaction row in sorted id order so
		// concurrent assigners cannot deadlock.
		ids := append([]string{input.ClearingID}, input.CandidateIDs...)
		sort.Strings(ids)

		locked, err := uc.transactionRepo.GetByIDsForUpdate(ctx, tx, ids)
		if err != nil {
			return err
		}
		if len(locked) != len(ids) {
			return domain.ErrTransactionNotFound
		}

		byID := make(map[string]*domain.Transaction, len(locked))
		for _, txn := range locked {
			byID[txn.ID] = txn
		}

		clearing := byID[input.ClearingID]
		if !clearing.IsPosted() {
			return fmt.Errorf("%w: clearing %s", domain.ErrUnpostedAssignment, clearing.ID)
		}
		if !clearing.Type.Assignable() {
			return fmt.Errorf("%w: %s", domain.ErrUnassignableTransaction, clearing.Type)
		}

		clearingOutstanding, err := uc.outstandingTx(ctx, tx, clearing.ID)
		if err != nil {
			return err
		}
		if !clearingOutstanding.IsPositive() {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientBalance, clearing.ID)
		}

		candidates := make([]domain.Candidate, 0, len(input.CandidateIDs))
		for _, candidateID := range input.CandidateIDs {
			candidate := byID[candidateID]
			if !candidate.IsPosted() {
				return fmt.Errorf("%w: candidate %s", domain.ErrUnpostedAssignment, candidate.ID)
			}
			if !candidate.Type.Clearable() {
				return fmt.Errorf("%w: %s", domain.ErrUnclearableTransaction, candidate.Type)
			}

			outstanding, err := uc.outstandingTx(ctx, tx, candidate.ID)
			if err != nil {
				return err
			}

			if candidate.Currency != clearing.Currency {
				if input.Rate == nil {
					return fmt.Errorf("%w: %s vs %s", domain.ErrCurrencyMismatch, candidate.Currency, clearing.Currency)
				}
				translated, err := domain.NewMoney(outstanding, candidate.Currency).Translate(*input.Rate)
				if err != nil {
					return err
				}
				if translated.Currency != clearing.Currency {
					return fmt.Errorf("%w: rate targets %s, clearing is %s", domain.ErrCurrencyMismatch, translated.Currency, clearing.Currency)
				}
				outstanding = translated.Amount
			}

			candidates = append(candidates, domain.Candidate{
				TransactionID: candidate.ID,
				Date:          candidate.Date,
				Outstanding:   outstanding,
			})
		}

		allocations, err := strategy(clearingOutstanding, candidates)
		if err != nil {
			return err
		}

		assignments = make([]*domain.Assignment, 0, len(allocations))
		for _, allocation := range allocations {
			// The allocation is in the clearing currency; the clearable's
			// side of the record must be in its own currency or its
			// outstanding balance would mix denominations.
			clearableAmount := allocation.Amount
			if byID[allocation.ClearableID].Currency != clearing.Currency {
				back, err := domain.NewMoney(allocation.Amount, clearing.Currency).TranslateBack(*input.Rate)
				if err != nil {
					return err
				}
				clearableAmount = back.Amount
			}

			assignment := &domain.Assignment{
				ID:              uc.idGen.Generate(),
				EntityID:        clearing.EntityID,
				ClearingID:      clearing.ID,
				ClearableID:     allocation.ClearableID,
				Amount:          allocation.Amount,
				ClearableAmount: clearableAmount,
				Date:            now,
				CreatedAt:       now,
			}
			if err := uc.assignmentRepo.Create(ctx, tx, assignment); err != nil {
				return err
			}
			assignments = append(assignments, assignment)
		}

		return tx.Commit(ctx)
	}

	if err := runWrite(ctx, uc.retrier, write); err != nil {
		return nil, err
	}

	uc.metrics.AssignmentsCreated.Add(float64(len(assignments)))
	uc.logger.Info().
		Str("clearing_id", input.ClearingID).
		Int("assignments", len(assignments)).
		Msg("clearing assigned")

	return assignments, nil
}

// Unassign reverses one whole assignment record, restoring both
// transactions' outstanding balances. Partial reversal is never allowed.
func (uc *AssignmentUseCase) Unassign(ctx context.Context, assignmentID string) error {
	assignment, err := uc.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}

	write := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		ids := []string{assignment.ClearingID, assignment.ClearableID}
		sort.Strings(ids)
		if _, err := uc.transactionRepo.GetByIDsForUpdate(ctx, tx, ids); err != nil {
			return err
		}

		if err := uc.assignmentRepo.Delete(ctx, tx, assignmentID); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if err := runWrite(ctx, uc.retrier, write); err != nil {
		return err
	}

	uc.metrics.AssignmentsReversed.Inc()
	uc.logger.Info().
		Str("assignment_id", assignmentID).
		Str("clearing_id", assignment.ClearingID).
		Str("clearable_id", assignment.ClearableID).
		Msg("assignment reversed")

	return nil
}

// outstandingTx computes a transaction's outstanding balance inside tx:
// posted amount (from immutable entries) minus everything already assigned.
func (uc *AssignmentUseCase) outstandingTx(ctx context.Context, tx Tx, transactionID string) (decimal.Decimal, error) {
	entries, err := uc.entryRepo.GetByTransaction(ctx, transactionID)
	if err != nil {
		return decimal.Zero, err
	}

	assigned, err := uc.assignmentRepo.SumByTransactionTx(ctx, tx, transactionID)
	if err != nil {
		return decimal.Zero, err
	}

	return postedAmount(entries).Sub(assigned), nil
}
