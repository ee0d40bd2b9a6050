package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Assignment links a clearing transaction (receipt, payment) to a clearable
// one (invoice, bill) for a specific amount. Many-to-many; the sum assigned
// against a transaction never exceeds its posted amount.
//
// Amount is denominated in the clearing transaction's currency and
// ClearableAmount in the clearable's, so each side's outstanding balance
// subtracts a like-currency figure. The two are equal when the currencies
// match.
type Assignment struct {
	ID              string
	EntityID        string
	ClearingID      string
	ClearableID     string
	Amount          decimal.Decimal
	ClearableAmount decimal.Decimal
	Date            time.Time
	CreatedAt       time.Time
}

// Candidate is a clearable transaction offered to an allocation strategy,
// with its outstanding balance as read inside the assignment's transactional
// boundary.
type Candidate struct {
	TransactionID string
	Date          time.Time
	Outstanding   decimal.Decimal
}

// Allocation is one planned clearance produced by a strategy.
type Allocation struct {
	ClearableID string
	Amount      decimal.Decimal
}

// AllocationStrategy plans how a clearing transaction's outstanding balance
// is spread over an ordered candidate sequence. Strategies are pure; all
// reads and writes happen around them in the assignment use case.
type AllocationStrategy func(clearingOutstanding decimal.Decimal, candidates []Candidate) ([]Allocation, error)

// FIFOStrategy clears the oldest outstanding balances first: candidates are
// ordered by folio date (ties by transaction id), and each receives
// min(clearing remaining, candidate outstanding) until the clearing amount
// is exhausted.
func FIFOStrategy(clearingOutstanding decimal.Decimal, candidates []Candidate) ([]Allocation, error) {
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].TransactionID < ordered[j].TransactionID
	})

	remaining := clearingOutstanding
	var allocations []Allocation
	for _, candidate := range ordered {
		if !remaining.IsPositive() {
			break
		}
		if !candidate.Outstanding.IsPositive() {
			continue
		}
		amount := decimal.Min(remaining, candidate.Outstanding)
		allocations = append(allocations, Allocation{
			ClearableID: candidate.TransactionID,
			Amount:      amount,
		})
		remaining = remaining.Sub(amount)
	}

	return allocations, nil
}

// ManualStrategy allocates exactly the caller-supplied amounts, in candidate
// order. An amount above a candidate's outstanding balance fails with
// ErrOverAssignment; a total above the clearing outstanding fails with
// ErrInsufficientBalance.
func ManualStrategy(amounts map[string]decimal.Decimal) AllocationStrategy {
	return func(clearingOutstanding decimal.Decimal, candidates []Candidate) ([]Allocation, error) {
		remaining := clearingOutstanding
		var allocations []Allocation
		for _, candidate := range candidates {
			amount, ok := amounts[candidate.TransactionID]
			if !ok || amount.IsZero() {
				continue
			}
			if !amount.IsPositive() {
				return nil, fmt.Errorf("%w: %s for %s", ErrInvalidAmount, amount, candidate.TransactionID)
			}
			if amount.GreaterThan(candidate.Outstanding) {
				return nil, fmt.Errorf("%w: %s exceeds outstanding %s of %s",
					ErrOverAssignment, amount, candidate.Outstanding, candidate.TransactionID)
			}
			if amount.GreaterThan(remaining) {
				return nil, fmt.Errorf("%w: %s exceeds remaining %s",
					ErrInsufficientBalance, amount, remaining)
			}
			allocations = append(allocations, Allocation{
				ClearableID: candidate.TransactionID,
				Amount:      amount,
			})
			remaining = remaining.Sub(amount)
		}
		return allocations, nil
	}
}
