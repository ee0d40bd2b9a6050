package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/acctledger/internal/domain"
)

// PeriodRepository implements usecase.PeriodRepository.
type PeriodRepository struct {
	pool *pgxpool.Pool
}

// NewPeriodRepository creates a new PeriodRepository.
func NewPeriodRepository(pool *pgxpool.Pool) *PeriodRepository {
	return &PeriodRepository{pool: pool}
}

const periodColumns = `id, entity_id, period_start, period_end, period_count, status, created_at, updated_at`

// Create stores a reporting period.
func (r *PeriodRepository) Create(ctx context.Context, period *domain.ReportingPeriod) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reporting_periods (`+periodColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		period.ID,
		period.EntityID,
		timeToPgTimestamptz(period.Start),
		timeToPgTimestamptz(period.End),
		period.PeriodCount,
		string(period.Status),
		timeToPgTimestamptz(period.CreatedAt),
		timeToPgTimestamptz(period.UpdatedAt),
	)

	return err
}

// GetByDate retrieves the period covering a date: start inclusive, end
// exclusive.
func (r *PeriodRepository) GetByDate(ctx context.Context, entityID string, date time.Time) (*domain.ReportingPeriod, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+periodColumns+`
		FROM reporting_periods
		WHERE entity_id = $1 AND period_start <= $2 AND period_end > $2`,
		entityID, timeToPgTimestamptz(date))

	var (
		period               domain.ReportingPeriod
		start, end           pgtype.Timestamptz
		status               string
		createdAt, updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(
		&period.ID,
		&period.EntityID,
		&start,
		&end,
		&period.PeriodCount,
		&status,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPeriodNotFound
		}

		return nil, err
	}

	period.Start = start.Time
	period.End = end.Time
	period.Status = domain.PeriodStatus(status)
	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return &period, nil
}

// UpdateStatus transitions a period between open, adjusting and closed.
func (r *PeriodRepository) UpdateStatus(ctx context.Context, id string, status domain.PeriodStatus, now time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE reporting_periods
		SET status = $2, updated_at = $3
		WHERE id = $1`,
		id, string(status), timeToPgTimestamptz(now))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPeriodNotFound
	}

	return nil
}
