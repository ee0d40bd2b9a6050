package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is an immutable fact recorded exactly once per posted line
// item. Entries are never updated; a void produces equal-and-opposite entries
// rather than removing the originals.
type LedgerEntry struct {
	ID            string
	EntityID      string
	TransactionID string
	LineItemID    string
	AccountID     string
	FolioDate     time.Time
	Amount        decimal.Decimal
	Side          EntrySide
	Currency      string
	Ordinal       int
	CreatedAt     time.Time
}

// Before defines the canonical replay order: folio date, then transaction id,
// then line-item ordinal. Balance-as-of queries must be reproducible, so ties
// are always broken the same way.
func (e *LedgerEntry) Before(other *LedgerEntry) bool {
	if !e.FolioDate.Equal(other.FolioDate) {
		return e.FolioDate.Before(other.FolioDate)
	}
	if e.TransactionID != other.TransactionID {
		return e.TransactionID < other.TransactionID
	}
	return e.Ordinal < other.Ordinal
}

// SignedAmount returns the entry amount signed for an account of the given
// type: positive when the entry is on the account's normal side.
func (e *LedgerEntry) SignedAmount(accountType AccountType) decimal.Decimal {
	return e.Amount.Mul(accountType.BalanceSign(e.Side))
}
