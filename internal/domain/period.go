package domain

import (
	"fmt"
	"time"
)

// PeriodStatus is the lifecycle state of a reporting period.
type PeriodStatus string

const (
	PeriodOpen      PeriodStatus = "open"
	PeriodAdjusting PeriodStatus = "adjusting"
	PeriodClosed    PeriodStatus = "closed"
)

// ReportingPeriod is a date range postings are attributed to. A closed period
// is immutable; an adjusting period accepts journal entries only. Reopening
// is an explicit administrative action, never a side effect of posting.
type ReportingPeriod struct {
	ID          string
	EntityID    string
	Start       time.Time
	End         time.Time
	PeriodCount int
	Status      PeriodStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Contains reports whether date falls inside the period: Start inclusive,
// End exclusive.
func (p *ReportingPeriod) Contains(date time.Time) bool {
	return !date.Before(p.Start) && date.Before(p.End)
}

// CanPost checks whether a transaction of the given type may be posted into
// this period.
func (p *ReportingPeriod) CanPost(txType TransactionType) error {
	switch p.Status {
	case PeriodClosed:
		return fmt.Errorf("%w: period %d", ErrClosedPeriod, p.PeriodCount)
	case PeriodAdjusting:
		if txType != JournalEntry {
			return fmt.Errorf("%w: period %d", ErrAdjustingPeriod, p.PeriodCount)
		}
	}
	return nil
}

// Close locks the period against further postings.
func (p *ReportingPeriod) Close(now time.Time) {
	p.Status = PeriodClosed
	p.UpdatedAt = now
}

// Reopen returns a closed or adjusting period to the open state.
func (p *ReportingPeriod) Reopen(now time.Time) {
	p.Status = PeriodOpen
	p.UpdatedAt = now
}
