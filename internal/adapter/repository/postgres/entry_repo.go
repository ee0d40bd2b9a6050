package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/acctledger/internal/domain"
	"github.com/iho/acctledger/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository over the append-only
// ledger_entries table. There is no update or delete path; corrections go
// through compensating transactions.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const entryColumns = `id, entity_id, transaction_id, line_item_id, account_id,
	folio_date, amount, side, currency, ordinal, created_at`

// CreateBatch appends entries inside tx using the pgx bulk copy protocol.
func (r *EntryRepository) CreateBatch(ctx context.Context, tx usecase.Tx, entries []*domain.LedgerEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{
			e.ID,
			e.EntityID,
			e.TransactionID,
			e.LineItemID,
			e.AccountID,
			timeToPgTimestamptz(e.FolioDate),
			decimalToNumeric(e.Amount),
			string(e.Side),
			e.Currency,
			e.Ordinal,
			timeToPgTimestamptz(e.CreatedAt),
		})
	}

	_, err := pgxTx.CopyFrom(ctx,
		pgx.Identifier{"ledger_entries"},
		[]string{"id", "entity_id", "transaction_id", "line_item_id", "account_id",
			"folio_date", "amount", "side", "currency", "ordinal", "created_at"},
		pgx.CopyFromRows(rows),
	)

	return err
}

// GetByTransaction retrieves a transaction's entries in posting order.
func (r *EntryRepository) GetByTransaction(ctx context.Context, transactionID string) ([]*domain.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM ledger_entries
		WHERE transaction_id = $1
		ORDER BY ordinal`, transactionID)
	if err != nil {
		return nil, err
	}

	return scanEntries(rows)
}

// GetByAccountRange retrieves an account's entries in a folio date range, in
// canonical replay order: folio date, transaction id, ordinal.
func (r *EntryRepository) GetByAccountRange(ctx context.Context, accountID string, from, to time.Time) ([]*domain.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM ledger_entries
		WHERE account_id = $1 AND folio_date >= $2 AND folio_date < $3
		ORDER BY folio_date, transaction_id, ordinal`,
		accountID, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}

	return scanEntries(rows)
}

// AccountTotals sums debit and credit entry amounts for an account up to and
// including asOf.
func (r *EntryRepository) AccountTotals(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var debits, credits pgtype.Numeric

	err := r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE side = 'debit'), 0),
			COALESCE(SUM(amount) FILTER (WHERE side = 'credit'), 0)
		FROM ledger_entries
		WHERE account_id = $1 AND folio_date <= $2`,
		accountID, timeToPgTimestamptz(asOf)).Scan(&debits, &credits)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(debits), numericToDecimal(credits), nil
}

// EntityTotals sums all debit and credit entry amounts for an entity.
func (r *EntryRepository) EntityTotals(ctx context.Context, entityID string) (decimal.Decimal, decimal.Decimal, error) {
	var debits, credits pgtype.Numeric

	err := r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE side = 'debit'), 0),
			COALESCE(SUM(amount) FILTER (WHERE side = 'credit'), 0)
		FROM ledger_entries
		WHERE entity_id = $1`,
		entityID).Scan(&debits, &credits)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(debits), numericToDecimal(credits), nil
}

// TrialBalance returns per-account debit/credit totals for an entity as of a
// date.
func (r *EntryRepository) TrialBalance(ctx context.Context, entityID string, asOf time.Time) ([]*usecase.AccountTotals, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			e.account_id,
			a.type,
			COALESCE(SUM(e.amount) FILTER (WHERE e.side = 'debit'), 0),
			COALESCE(SUM(e.amount) FILTER (WHERE e.side = 'credit'), 0)
		FROM ledger_entries e
		JOIN accounts a ON a.id = e.account_id
		WHERE e.entity_id = $1 AND e.folio_date <= $2
		GROUP BY e.account_id, a.type
		ORDER BY e.account_id`,
		entityID, timeToPgTimestamptz(asOf))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*usecase.AccountTotals
	for rows.Next() {
		var (
			row             usecase.AccountTotals
			accType         string
			debits, credits pgtype.Numeric
		)
		if err := rows.Scan(&row.AccountID, &accType, &debits, &credits); err != nil {
			return nil, err
		}
		row.AccountType = domain.AccountType(accType)
		row.Debits = numericToDecimal(debits)
		row.Credits = numericToDecimal(credits)
		totals = append(totals, &row)
	}

	return totals, rows.Err()
}

func scanEntries(rows pgx.Rows) ([]*domain.LedgerEntry, error) {
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		var (
			e                    domain.LedgerEntry
			folioDate, createdAt pgtype.Timestamptz
			amount               pgtype.Numeric
			side                 string
		)
		if err := rows.Scan(
			&e.ID,
			&e.EntityID,
			&e.TransactionID,
			&e.LineItemID,
			&e.AccountID,
			&folioDate,
			&amount,
			&side,
			&e.Currency,
			&e.Ordinal,
			&createdAt,
		); err != nil {
			return nil, err
		}
		e.FolioDate = folioDate.Time
		e.Amount = numericToDecimal(amount)
		e.Side = domain.EntrySide(side)
		e.CreatedAt = createdAt.Time
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
