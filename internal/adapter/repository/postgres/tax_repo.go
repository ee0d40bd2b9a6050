package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/acctledger/internal/domain"
)

// TaxRepository implements usecase.TaxRepository.
type TaxRepository struct {
	pool *pgxpool.Pool
}

// NewTaxRepository creates a new TaxRepository.
func NewTaxRepository(pool *pgxpool.Pool) *TaxRepository {
	return &TaxRepository{pool: pool}
}

// Create stores a tax definition.
func (r *TaxRepository) Create(ctx context.Context, tax *domain.Tax) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO taxes (id, entity_id, code, name, rate, compound, inclusive, account_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		tax.ID,
		tax.EntityID,
		tax.Code,
		tax.Name,
		decimalToNumeric(tax.Rate),
		tax.Compound,
		tax.Inclusive,
		tax.AccountID,
	)

	return err
}

// GetByIDs retrieves tax definitions keyed by id. Missing ids are simply
// absent from the map; the caller decides whether that is an error.
func (r *TaxRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Tax, error) {
	taxes := make(map[string]*domain.Tax, len(ids))
	if len(ids) == 0 {
		return taxes, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, entity_id, code, name, rate, compound, inclusive, account_id
		FROM taxes
		WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tax  domain.Tax
			rate pgtype.Numeric
		)
		if err := rows.Scan(
			&tax.ID,
			&tax.EntityID,
			&tax.Code,
			&tax.Name,
			&rate,
			&tax.Compound,
			&tax.Inclusive,
			&tax.AccountID,
		); err != nil {
			return nil, err
		}
		tax.Rate = numericToDecimal(rate)
		taxes[tax.ID] = &tax
	}

	return taxes, rows.Err()
}
