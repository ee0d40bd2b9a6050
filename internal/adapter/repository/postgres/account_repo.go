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

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, entity_id, name, type, currency, active, created_at, updated_at`

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		account.ID,
		account.EntityID,
		account.Name,
		string(account.Type),
		account.Currency,
		account.Active,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1`, id)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// GetByIDs retrieves multiple accounts by IDs.
func (r *AccountRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}

	return scanAccounts(rows)
}

// Deactivate marks an account inactive. Its history stays replayable; only
// new postings are refused.
func (r *AccountRepository) Deactivate(ctx context.Context, id string, now time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET active = false, updated_at = $2
		WHERE id = $1`,
		id, timeToPgTimestamptz(now))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// List lists an entity's accounts with pagination.
// List returns an entity's accounts ordered by name. The limit is clamped
// to the use-case pagination bounds, so callers cannot request unbounded
// pages.
func (r *AccountRepository) List(ctx context.Context, entityID string, limit, offset int) ([]*domain.Account, error) {
	limit = usecase.ClampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE entity_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`,
		entityID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}

	return scanAccounts(rows)
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account              domain.Account
		accType              string
		createdAt, updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(
		&account.ID,
		&account.EntityID,
		&account.Name,
		&accType,
		&account.Currency,
		&account.Active,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	account.Type = domain.AccountType(accType)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}

func scanAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}
