package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/acctledger/internal/domain"
)

// AccountRepository defines data access for chart-of-accounts nodes.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error)
	Deactivate(ctx context.Context, id string, now time.Time) error
	List(ctx context.Context, entityID string, limit, offset int) ([]*domain.Account, error)
}

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx Tx, txn *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	// GetByIDsForUpdate locks the transaction rows for the duration of tx.
	// Callers pass ids sorted to keep lock ordering deadlock-free.
	GetByIDsForUpdate(ctx context.Context, tx Tx, ids []string) ([]*domain.Transaction, error)
	MarkPosted(ctx context.Context, tx Tx, id, transactionNo string, postedAt time.Time) error
	MarkVoided(ctx context.Context, tx Tx, id, reason string, voidedAt time.Time) error
	// NextSequence returns the next per-period sequence number for
	// transaction numbering of the given type.
	NextSequence(ctx context.Context, tx Tx, entityID string, txType domain.TransactionType, periodStart time.Time) (int64, error)
}

// EntryRepository defines data access for the append-only ledger.
type EntryRepository interface {
	CreateBatch(ctx context.Context, tx Tx, entries []*domain.LedgerEntry) error
	GetByTransaction(ctx context.Context, transactionID string) ([]*domain.LedgerEntry, error)
	// GetByAccountRange returns entries ordered by (folio date, transaction
	// id, ordinal) for statement projections.
	GetByAccountRange(ctx context.Context, accountID string, from, to time.Time) ([]*domain.LedgerEntry, error)
	// AccountTotals sums debit and credit entry amounts for an account up to
	// and including asOf.
	AccountTotals(ctx context.Context, accountID string, asOf time.Time) (debits, credits decimal.Decimal, err error)
	// EntityTotals sums all debit and credit entry amounts for an entity.
	EntityTotals(ctx context.Context, entityID string) (debits, credits decimal.Decimal, err error)
	// TrialBalance returns per-account debit/credit totals for an entity as
	// of a date, the raw material for report projections.
	TrialBalance(ctx context.Context, entityID string, asOf time.Time) ([]*AccountTotals, error)
}

// AccountTotals is one trial-balance row.
type AccountTotals struct {
	AccountID   string
	AccountType domain.AccountType
	Debits      decimal.Decimal
	Credits     decimal.Decimal
}

// AssignmentRepository defines data access for clearing assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, tx Tx, assignment *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	Delete(ctx context.Context, tx Tx, id string) error
	ListByTransaction(ctx context.Context, transactionID string) ([]*domain.Assignment, error)
	// SumByTransaction totals amounts assigned for or against a transaction
	// in either role.
	SumByTransaction(ctx context.Context, transactionID string) (decimal.Decimal, error)
	// SumByTransactionTx is SumByTransaction inside tx, so outstanding
	// balances are re-read under the same transactional boundary that
	// writes assignments.
	SumByTransactionTx(ctx context.Context, tx Tx, transactionID string) (decimal.Decimal, error)
}

// PeriodRepository defines data access for reporting periods.
type PeriodRepository interface {
	Create(ctx context.Context, period *domain.ReportingPeriod) error
	GetByDate(ctx context.Context, entityID string, date time.Time) (*domain.ReportingPeriod, error)
	UpdateStatus(ctx context.Context, id string, status domain.PeriodStatus, now time.Time) error
}

// TaxRepository defines data access for tax definitions.
type TaxRepository interface {
	Create(ctx context.Context, tax *domain.Tax) error
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Tax, error)
}

// Tx represents a database transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager handles database transaction lifecycle.
type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

// Retrier re-runs an operation after a transient storage conflict. The
// operations handed to it span a whole database transaction and re-check
// state under row locks, so a replay cannot double-apply.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// BalanceCache caches derived balances per (account, as-of date). It must be
// invalidated precisely on new ledger entries touching the account; a stale
// balance must never reach a validation check.
type BalanceCache interface {
	Get(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, bool, error)
	Set(ctx context.Context, accountID string, asOf time.Time, balance decimal.Decimal, ttl time.Duration) error
	Invalidate(ctx context.Context, accountID string) error
}
