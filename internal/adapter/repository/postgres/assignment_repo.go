package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/acctledger/internal/domain"
	"github.com/iho/acctledger/internal/usecase"
)

// AssignmentRepository implements usecase.AssignmentRepository.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

const assignmentColumns = `id, entity_id, clearing_id, clearable_id, amount, clearable_amount, date, created_at`

// Create stores an assignment inside tx.
func (r *AssignmentRepository) Create(ctx context.Context, tx usecase.Tx, assignment *domain.Assignment) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO assignments (`+assignmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		assignment.ID,
		assignment.EntityID,
		assignment.ClearingID,
		assignment.ClearableID,
		decimalToNumeric(assignment.Amount),
		decimalToNumeric(assignment.ClearableAmount),
		timeToPgTimestamptz(assignment.Date),
		timeToPgTimestamptz(assignment.CreatedAt),
	)

	return err
}

// GetByID retrieves an assignment by ID.
func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+assignmentColumns+`
		FROM assignments
		WHERE id = $1`, id)

	assignment, err := scanAssignment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssignmentNotFound
		}

		return nil, err
	}

	return assignment, nil
}

// Delete removes a whole assignment record inside tx. Assignments are the
// only mutable clearing state; partial edits are not supported.
func (r *AssignmentRepository) Delete(ctx context.Context, tx usecase.Tx, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAssignmentNotFound
	}

	return nil
}

// ListByTransaction retrieves assignments touching a transaction in either
// role.
func (r *AssignmentRepository) ListByTransaction(ctx context.Context, transactionID string) ([]*domain.Assignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+assignmentColumns+`
		FROM assignments
		WHERE clearing_id = $1 OR clearable_id = $1
		ORDER BY created_at, id`, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*domain.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

// SumByTransaction totals amounts assigned for or against a transaction.
func (r *AssignmentRepository) SumByTransaction(ctx context.Context, transactionID string) (decimal.Decimal, error) {
	return sumByTransaction(ctx, r.pool, transactionID)
}

// SumByTransactionTx is SumByTransaction inside tx, so outstanding balances
// are read under the same transactional boundary that writes assignments.
func (r *AssignmentRepository) SumByTransactionTx(ctx context.Context, tx usecase.Tx, transactionID string) (decimal.Decimal, error) {
	return sumByTransaction(ctx, tx.(*Tx).PgxTx(), transactionID)
}

type pgxRowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// sumByTransaction totals the side of each assignment that faces the
// transaction: clearing-currency amount when it is the clearing party,
// clearable-currency amount when it is the one being cleared.
func sumByTransaction(ctx context.Context, q pgxRowQuerier, transactionID string) (decimal.Decimal, error) {
	var total pgtype.Numeric

	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN clearing_id = $1 THEN amount ELSE clearable_amount END), 0)
		FROM assignments
		WHERE clearing_id = $1 OR clearable_id = $1`,
		transactionID).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var (
		assignment              domain.Assignment
		amount, clearableAmount pgtype.Numeric
		date, createdAt         pgtype.Timestamptz
	)

	if err := row.Scan(
		&assignment.ID,
		&assignment.EntityID,
		&assignment.ClearingID,
		&assignment.ClearableID,
		&amount,
		&clearableAmount,
		&date,
		&createdAt,
	); err != nil {
		return nil, err
	}

	assignment.Amount = numericToDecimal(amount)
	assignment.ClearableAmount = numericToDecimal(clearableAmount)
	assignment.Date = date.Time
	assignment.CreatedAt = createdAt.Time

	return &assignment, nil
}
