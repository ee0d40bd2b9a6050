package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/acctledger/internal/domain"
	"github.com/iho/acctledger/internal/infrastructure/metrics"
)

// PostingUseCase turns validated transactions into immutable ledger entries.
type PostingUseCase struct {
	txManager       TxManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	entryRepo       EntryRepository
	periodRepo      PeriodRepository
	taxRepo         TaxRepository
	idGen           IDGenerator
	cache           BalanceCache
	retrier         Retrier
	logger          zerolog.Logger
	metrics         *metrics.Metrics
}

// NewPostingUseCase creates a new PostingUseCase.
func NewPostingUseCase(
	txManager TxManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	entryRepo EntryRepository,
	periodRepo PeriodRepository,
	taxRepo TaxRepository,
	idGen IDGenerator,
	cache BalanceCache,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *PostingUseCase {
	return &PostingUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		entryRepo:       entryRepo,
		periodRepo:      periodRepo,
		taxRepo:         taxRepo,
		idGen:           idGen,
		cache:           cache,
		logger:          logger,
		metrics:         m,
	}
}

// WithRetrier makes Post replay its write transaction on transient storage
// conflicts instead of surfacing them.
func (uc *PostingUseCase) WithRetrier(retrier Retrier) *PostingUseCase {
	uc.retrier = retrier
	return uc
}

// Post validates txn and appends its ledger entries atomically. Posting an
// already-posted transaction is a no-op returning the existing entries, so
// retries cannot double-post. Without a retrier the call makes a single
// write attempt and surfaces storage conflicts to the caller.
func (uc *PostingUseCase) Post(ctx context.Context, txn *domain.Transaction) ([]*domain.LedgerEntry, error) {
	start := time.Now()

	if txn.Status == domain.StatusPosted {
		return uc.entryRepo.GetByTransaction(ctx, txn.ID)
	}
	if txn.Status == domain.StatusVoided {
		return nil, domain.ErrAlreadyVoided
	}

	accounts, err := uc.loadAccounts(ctx, txn)
	if err != nil {
		return nil, err
	}

	taxes, err := uc.taxRepo.GetByIDs(ctx, collectTaxIDs(txn))
	if err != nil {
		return nil, err
	}

	// All validation happens before any write.
	if err := txn.Validate(accounts, taxes); err != nil {
		return nil, err
	}

	period, err := uc.periodRepo.GetByDate(ctx, txn.EntityID, txn.Date)
	if err != nil {
		return nil, err
	}
	if err := period.CanPost(txn.Type); err != nil {
		return nil, err
	}

	expanded, err := txn.Expanded(taxes)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// A failed attempt may have mutated txn before rolling back; every
	// attempt starts from the pre-write state so a replay is a clean rerun.
	status, transactionNo, updatedAt := txn.Status, txn.TransactionNo, txn.UpdatedAt

	var (
		entries       []*domain.LedgerEntry
		alreadyPosted bool
	)
	write := func() error {
		txn.Status, txn.TransactionNo, txn.UpdatedAt = status, transactionNo, updatedAt
		alreadyPosted = false

		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		// Re-check the posted status under a row lock: a concurrent Post for
		// the same transaction id resolves here instead of double-appending.
		locked, err := uc.transactionRepo.GetByIDsForUpdate(ctx, tx, []string{txn.ID})
		if err != nil && !errors.Is(err, domain.ErrTransactionNotFound) {
			return err
		}

		if len(locked) == 1 {
			switch locked[0].Status {
			case domain.StatusPosted:
				alreadyPosted = true
				entries, err = uc.entryRepo.GetByTransaction(ctx, txn.ID)
				return err
			case domain.StatusVoided:
				return domain.ErrAlreadyVoided
			}
		} else {
			if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
				return err
			}
		}

		entries, err = uc.postPrepared(ctx, tx, txn, expanded, period, now)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if err := runWrite(ctx, uc.retrier, write); err != nil {
		return nil, err
	}
	if alreadyPosted {
		return entries, nil
	}

	uc.invalidateBalances(ctx, entries)

	uc.metrics.TransactionsPosted.Inc()
	uc.metrics.LedgerEntriesAppended.Add(float64(len(entries)))
	uc.metrics.PostDuration.Observe(time.Since(start).Seconds())

	uc.logger.Info().
		Str("transaction_id", txn.ID).
		Str("transaction_no", txn.TransactionNo).
		Str("type", string(txn.Type)).
		Int("entries", len(entries)).
		Msg("transaction posted")

	return entries, nil
}

// postPrepared numbers the transaction, appends one entry per expanded line
// item and marks the transaction posted, all inside tx. Shared with the
// recycling use case, which posts compensating transactions through the same
// path.
func (uc *PostingUseCase) postPrepared(
	ctx context.Context,
	tx Tx,
	txn *domain.Transaction,
	lines []domain.LineItem,
	period *domain.ReportingPeriod,
	now time.Time,
) ([]*domain.LedgerEntry, error) {
	if txn.TransactionNo == "" {
		seq, err := uc.transactionRepo.NextSequence(ctx, tx, txn.EntityID, txn.Type, period.Start)
		if err != nil {
			return nil, err
		}
		txn.TransactionNo = fmt.Sprintf("%s%02d/%04d", txn.Type.Prefix(), period.PeriodCount, seq)
	}

	entries := make([]*domain.LedgerEntry, 0, len(lines))
	for _, li := range lines {
		lineItemID := li.ID
		if lineItemID == "" {
			lineItemID = uc.idGen.Generate()
		}

		entries = append(entries, &domain.LedgerEntry{
			ID:            uc.idGen.Generate(),
			EntityID:      txn.EntityID,
			TransactionID: txn.ID,
			LineItemID:    lineItemID,
			AccountID:     li.AccountID,
			FolioDate:     txn.Date,
			Amount:        li.Total(),
			Side:          li.Side,
			Currency:      txn.Currency,
			Ordinal:       li.Ordinal,
			CreatedAt:     now,
		})
	}

	if err := uc.entryRepo.CreateBatch(ctx, tx, entries); err != nil {
		return nil, err
	}

	if err := txn.MarkPosted(now); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.MarkPosted(ctx, tx, txn.ID, txn.TransactionNo, now); err != nil {
		return nil, err
	}

	return entries, nil
}

// invalidateBalances drops cached balances for every account the entries
// touched. The post is already durable, so failures are logged, not
// surfaced; the cache TTL bounds the damage.
func (uc *PostingUseCase) invalidateBalances(ctx context.Context, entries []*domain.LedgerEntry) {
	seen := make(map[string]bool)
	for _, entry := range entries {
		if seen[entry.AccountID] {
			continue
		}
		seen[entry.AccountID] = true

		if err := uc.cache.Invalidate(ctx, entry.AccountID); err != nil {
			uc.logger.Warn().
				Err(err).
				Str("account_id", entry.AccountID).
				Msg("balance cache invalidation failed")
		}
	}
}

func (uc *PostingUseCase) loadAccounts(ctx context.Context, txn *domain.Transaction) (map[string]*domain.Account, error) {
	ids := collectAccountIDs(txn)

	accounts, err := uc.accountRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	accountMap := make(map[string]*domain.Account, len(accounts))
	for _, account := range accounts {
		accountMap[account.ID] = account
	}

	return accountMap, nil
}

func collectAccountIDs(txn *domain.Transaction) []string {
	seen := make(map[string]bool)

	var ids []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	add(txn.MainAccountID)
	for _, li := range txn.LineItems {
		add(li.AccountID)
	}

	return ids
}

// runWrite executes a transactional write block, through the retrier when
// one is configured.
func runWrite(ctx context.Context, retrier Retrier, write func() error) error {
	if retrier != nil {
		return retrier.Retry(ctx, write)
	}
	return write()
}

func collectTaxIDs(txn *domain.Transaction) []string {
	seen := make(map[string]bool)

	var ids []string
	for _, li := range txn.LineItems {
		for _, taxID := range li.TaxIDs {
			if !seen[taxID] {
				seen[taxID] = true
				ids = append(ids, taxID)
			}
		}
	}

	return ids
}
