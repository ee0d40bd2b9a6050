package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator issues ULIDs for accounts, transactions, ledger entries and
// assignments. ULIDs sort by creation time, which keeps the sorted-id lock
// ordering in the use cases roughly chronological and index writes mostly
// append-only.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a fresh ULID in its canonical 26-character form.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
