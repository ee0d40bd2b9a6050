package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/acctledger/internal/domain"
	"github.com/iho/acctledger/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository. Line items
// live in their own table and are loaded with the transaction; a draft's line
// items are replaced wholesale on update, a posted transaction's are frozen.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, entity_id, transaction_no, date, narration, reference,
	currency, type, status, main_account_id, compensates_id, voided_at, void_reason,
	created_at, updated_at`

// Create stores a transaction and its line items inside tx.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		txn.ID,
		txn.EntityID,
		txn.TransactionNo,
		timeToPgTimestamptz(txn.Date),
		txn.Narration,
		txn.Reference,
		txn.Currency,
		string(txn.Type),
		string(txn.Status),
		txn.MainAccountID,
		ptrToPgText(txn.CompensatesID),
		ptrToPgTimestamptz(txn.VoidedAt),
		txn.VoidReason,
		timeToPgTimestamptz(txn.CreatedAt),
		timeToPgTimestamptz(txn.UpdatedAt),
	)
	if err != nil {
		return err
	}

	for _, li := range txn.LineItems {
		if _, err := pgxTx.Exec(ctx, `
			INSERT INTO line_items (id, transaction_id, account_id, amount, quantity,
				side, tax_ids, tax_of_line_id, description, ordinal)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			li.ID,
			txn.ID,
			li.AccountID,
			decimalToNumeric(li.Amount),
			decimalToNumeric(li.Quantity),
			string(li.Side),
			li.TaxIDs,
			li.TaxOfLineID,
			li.Description,
			li.Ordinal,
		); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a transaction with its line items.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = $1`, id)

	txn, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	if err := r.loadLineItems(ctx, r.pool, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// GetByIDsForUpdate locks transaction rows for the duration of tx. Callers
// pass ids sorted to keep lock ordering deadlock-free.
func (r *TransactionRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Tx, ids []string) ([]*domain.Transaction, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`, ids)
	if err != nil {
		return nil, err
	}

	txns, err := scanTransactions(rows)
	if err != nil {
		return nil, err
	}

	for _, txn := range txns {
		if err := r.loadLineItems(ctx, pgxTx, txn); err != nil {
			return nil, err
		}
	}

	return txns, nil
}

// MarkPosted stamps the transaction number and flips the status inside tx.
func (r *TransactionRepository) MarkPosted(ctx context.Context, tx usecase.Tx, id, transactionNo string, postedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE transactions
		SET transaction_no = $2, status = $3, updated_at = $4
		WHERE id = $1 AND status = $5`,
		id, transactionNo, string(domain.StatusPosted),
		timeToPgTimestamptz(postedAt), string(domain.StatusDraft))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// MarkVoided records the void inside tx. The entries stay untouched; the
// caller posts the compensating transaction in the same tx.
func (r *TransactionRepository) MarkVoided(ctx context.Context, tx usecase.Tx, id, reason string, voidedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE transactions
		SET status = $2, void_reason = $3, voided_at = $4, updated_at = $4
		WHERE id = $1 AND status = $5`,
		id, string(domain.StatusVoided), reason,
		timeToPgTimestamptz(voidedAt), string(domain.StatusPosted))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// NextSequence returns the next transaction number sequence for the type
// within a reporting period, via an upsert on the counter row.
func (r *TransactionRepository) NextSequence(ctx context.Context, tx usecase.Tx, entityID string, txType domain.TransactionType, periodStart time.Time) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()

	var seq int64
	err := pgxTx.QueryRow(ctx, `
		INSERT INTO transaction_sequences (entity_id, transaction_type, period_start, seq)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (entity_id, transaction_type, period_start)
		DO UPDATE SET seq = transaction_sequences.seq + 1
		RETURNING seq`,
		entityID, string(txType), timeToPgTimestamptz(periodStart)).Scan(&seq)
	if err != nil {
		return 0, err
	}

	return seq, nil
}

type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *TransactionRepository) loadLineItems(ctx context.Context, q pgxQuerier, txn *domain.Transaction) error {
	rows, err := q.Query(ctx, `
		SELECT id, account_id, amount, quantity, side, tax_ids, tax_of_line_id, description, ordinal
		FROM line_items
		WHERE transaction_id = $1
		ORDER BY ordinal`, txn.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	var items []domain.LineItem
	for rows.Next() {
		var (
			li     domain.LineItem
			amount pgtype.Numeric
			qty    pgtype.Numeric
			side   string
		)
		if err := rows.Scan(
			&li.ID,
			&li.AccountID,
			&amount,
			&qty,
			&side,
			&li.TaxIDs,
			&li.TaxOfLineID,
			&li.Description,
			&li.Ordinal,
		); err != nil {
			return err
		}
		li.Amount = numericToDecimal(amount)
		li.Quantity = numericToDecimal(qty)
		li.Side = domain.EntrySide(side)
		items = append(items, li)
	}

	txn.LineItems = items

	return rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn                  domain.Transaction
		date                 pgtype.Timestamptz
		txType, status       string
		compensatesID        pgtype.Text
		voidedAt             pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(
		&txn.ID,
		&txn.EntityID,
		&txn.TransactionNo,
		&date,
		&txn.Narration,
		&txn.Reference,
		&txn.Currency,
		&txType,
		&status,
		&txn.MainAccountID,
		&compensatesID,
		&voidedAt,
		&txn.VoidReason,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	txn.Date = date.Time
	txn.Type = domain.TransactionType(txType)
	txn.Status = domain.TransactionStatus(status)
	txn.CompensatesID = pgTextToPtr(compensatesID)
	txn.VoidedAt = pgTimestamptzToPtr(voidedAt)
	txn.CreatedAt = createdAt.Time
	txn.UpdatedAt = updatedAt.Time

	return &txn, nil
}

func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	defer rows.Close()

	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, rows.Err()
}
