package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/acctledger/internal/domain"
	"github.com/iho/acctledger/internal/infrastructure/metrics"
)

// BalanceUseCase exposes the ledger's derived-state API: balances, account
// statements and outstanding (unassigned) transaction amounts. Balances are
// never stored truth; they are folds over ledger entries, cached per
// (account, as-of) and invalidated on append.
type BalanceUseCase struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	entryRepo       EntryRepository
	assignmentRepo  AssignmentRepository
	cache           BalanceCache
	logger          zerolog.Logger
	metrics         *metrics.Metrics
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	entryRepo EntryRepository,
	assignmentRepo AssignmentRepository,
	cache BalanceCache,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *BalanceUseCase {
	return &BalanceUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		entryRepo:       entryRepo,
		assignmentRepo:  assignmentRepo,
		cache:           cache,
		logger:          logger,
		metrics:         m,
	}
}

// Balance returns the account's balance as of a date, sign-adjusted by the
// account type's normal side: a receivable with more debits than credits has
// a positive balance, a payable with more credits than debits likewise.
func (uc *BalanceUseCase) Balance(ctx context.Context, accountID string, asOf time.Time) (domain.Money, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return domain.Money{}, err
	}

	if cached, ok, err := uc.cache.Get(ctx, accountID, asOf); err == nil && ok {
		uc.metrics.BalanceCacheHits.Inc()
		return domain.NewMoney(cached, account.Currency), nil
	} else if err != nil {
		uc.logger.Warn().Err(err).Str("account_id", accountID).Msg("balance cache read failed")
	}
	uc.metrics.BalanceCacheMisses.Inc()

	debits, credits, err := uc.entryRepo.AccountTotals(ctx, accountID, asOf)
	if err != nil {
		return domain.Money{}, err
	}

	balance := signedBalance(account.Type, debits, credits)

	if err := uc.cache.Set(ctx, accountID, asOf, balance, BalanceCacheTTL); err != nil {
		uc.logger.Warn().Err(err).Str("account_id", accountID).Msg("balance cache write failed")
	}

	return domain.NewMoney(balance, account.Currency), nil
}

// Statement returns the account's ledger entries in a date range, in
// canonical replay order: folio date, transaction id, line-item ordinal.
func (uc *BalanceUseCase) Statement(ctx context.Context, accountID string, from, to time.Time) ([]*domain.LedgerEntry, error) {
	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return uc.entryRepo.GetByAccountRange(ctx, accountID, from, to)
}

// Outstanding returns a posted transaction's amount not yet consumed by
// assignments, in either clearing or clearable role. A voided transaction
// has zero outstanding balance.
func (uc *BalanceUseCase) Outstanding(ctx context.Context, transactionID string) (domain.Money, error) {
	txn, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return domain.Money{}, err
	}

	if txn.Status == domain.StatusVoided {
		return domain.NewMoney(decimal.Zero, txn.Currency), nil
	}
	if !txn.IsPosted() {
		return domain.Money{}, domain.ErrUnpostedTransaction
	}

	entries, err := uc.entryRepo.GetByTransaction(ctx, transactionID)
	if err != nil {
		return domain.Money{}, err
	}

	assigned, err := uc.assignmentRepo.SumByTransaction(ctx, transactionID)
	if err != nil {
		return domain.Money{}, err
	}

	return domain.NewMoney(postedAmount(entries).Sub(assigned), txn.Currency), nil
}

// postedAmount is the transaction total derived from its entries: the debit
// side sum, which equals the credit side for every posted transaction.
func postedAmount(entries []*domain.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		if entry.Side == domain.Debit {
			total = total.Add(entry.Amount)
		}
	}
	return total
}

func signedBalance(accountType domain.AccountType, debits, credits decimal.Decimal) decimal.Decimal {
	if accountType.NormalSide() == domain.Debit {
		return debits.Sub(credits)
	}
	return credits.Sub(debits)
}
