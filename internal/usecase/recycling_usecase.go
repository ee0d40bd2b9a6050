package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/acctledger/internal/domain"
	"github.com/iho/acctledger/internal/infrastructure/metrics"
)

// RecyclingUseCase voids posted transactions by posting a compensating
// mirror transaction, preserving the audit chain instead of deleting
// history.
type RecyclingUseCase struct {
	posting         *PostingUseCase
	txManager       TxManager
	transactionRepo TransactionRepository
	entryRepo       EntryRepository
	assignmentRepo  AssignmentRepository
	periodRepo      PeriodRepository
	idGen           IDGenerator
	logger          zerolog.Logger
	metrics         *metrics.Metrics
}

// NewRecyclingUseCase creates a new RecyclingUseCase.
func NewRecyclingUseCase(
	posting *PostingUseCase,
	txManager TxManager,
	transactionRepo TransactionRepository,
	entryRepo EntryRepository,
	assignmentRepo AssignmentRepository,
	periodRepo PeriodRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *RecyclingUseCase {
	return &RecyclingUseCase{
		posting:         posting,
		txManager:       txManager,
		transactionRepo: transactionRepo,
		entryRepo:       entryRepo,
		assignmentRepo:  assignmentRepo,
		periodRepo:      periodRepo,
		idGen:           idGen,
		logger:          logger,
		metrics:         m,
	}
}

// Void nullifies a posted transaction's ledger effect with a full mirror
// transaction (all sides flipped) dated at void time and posted through the
// normal posting path, then marks the original voided. The original entries
// are never touched. Fails if the transaction still has assignments; those
// must be unassigned first so no clearing reference is left dangling.
func (uc *RecyclingUseCase) Void(ctx context.Context, transactionID, reason string) ([]*domain.LedgerEntry, error) {
	original, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	switch original.Status {
	case domain.StatusVoided:
		return nil, domain.ErrAlreadyVoided
	case domain.StatusDraft:
		return nil, domain.ErrUnpostedTransaction
	}

	assignments, err := uc.assignmentRepo.ListByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if len(assignments) > 0 {
		return nil, fmt.Errorf("%w: %d assignment(s) reference %s",
			domain.ErrAssignedBalance, len(assignments), transactionID)
	}

	entries, err := uc.entryRepo.GetByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// The mirror posts into the period covering the void date, under the
	// same period rules as any other posting.
	period, err := uc.periodRepo.GetByDate(ctx, original.EntityID, now)
	if err != nil {
		return nil, err
	}
	if err := period.CanPost(original.Type); err != nil {
		return nil, err
	}

	mirror, mirrorLines := uc.buildMirror(original, entries, now, reason)

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	locked, err := uc.transactionRepo.GetByIDsForUpdate(ctx, tx, []string{transactionID})
	if err != nil {
		return nil, err
	}
	if len(locked) != 1 {
		return nil, domain.ErrTransactionNotFound
	}
	if locked[0].Status == domain.StatusVoided {
		return nil, domain.ErrAlreadyVoided
	}

	// Re-check assignments under the lock; a concurrent Assign could have
	// landed between the first read and here.
	assigned, err := uc.assignmentRepo.SumByTransactionTx(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if !assigned.IsZero() {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssignedBalance, transactionID)
	}

	if err := uc.transactionRepo.Create(ctx, tx, mirror); err != nil {
		return nil, err
	}

	mirrorEntries, err := uc.posting.postPrepared(ctx, tx, mirror, mirrorLines, period, now)
	if err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.MarkVoided(ctx, tx, transactionID, reason, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.posting.invalidateBalances(ctx, mirrorEntries)

	uc.metrics.TransactionsVoided.Inc()
	uc.logger.Info().
		Str("transaction_id", transactionID).
		Str("mirror_id", mirror.ID).
		Str("reason", reason).
		Msg("transaction voided")

	return mirrorEntries, nil
}

// buildMirror derives the compensating transaction from the original's
// ledger entries, the authoritative record of its effect: same accounts and
// amounts with every side flipped, tax already expanded so nothing expands
// twice.
func (uc *RecyclingUseCase) buildMirror(
	original *domain.Transaction,
	entries []*domain.LedgerEntry,
	now time.Time,
	reason string,
) (*domain.Transaction, []domain.LineItem) {
	lines := make([]domain.LineItem, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, domain.LineItem{
			ID:          uc.idGen.Generate(),
			AccountID:   entry.AccountID,
			Amount:      entry.Amount,
			Quantity:    decimal.NewFromInt(1),
			Side:        entry.Side.Opposite(),
			Description: "reversal",
			Ordinal:     i,
		})
	}

	originalID := original.ID
	mirror := &domain.Transaction{
		ID:            uc.idGen.Generate(),
		EntityID:      original.EntityID,
		Date:          now,
		Narration:     fmt.Sprintf("Reversal of %s: %s", original.TransactionNo, reason),
		Reference:     original.TransactionNo,
		Currency:      original.Currency,
		Type:          original.Type,
		Status:        domain.StatusDraft,
		MainAccountID: original.MainAccountID,
		LineItems:     lines,
		CompensatesID: &originalID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return mirror, lines
}
