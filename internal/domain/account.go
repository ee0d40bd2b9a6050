package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide is the debit or credit side of a double entry.
type EntrySide string

const (
	Debit  EntrySide = "debit"
	Credit EntrySide = "credit"
)

// Opposite returns the other side.
func (s EntrySide) Opposite() EntrySide {
	if s == Debit {
		return Credit
	}
	return Debit
}

// AccountType classifies a chart-of-accounts node and fixes its normal side.
type AccountType string

const (
	NonCurrentAsset     AccountType = "non_current_asset"
	ContraAsset         AccountType = "contra_asset"
	Inventory           AccountType = "inventory"
	Bank                AccountType = "bank"
	CurrentAsset        AccountType = "current_asset"
	Receivable          AccountType = "receivable"
	NonCurrentLiability AccountType = "non_current_liability"
	ControlAccount      AccountType = "control"
	CurrentLiability    AccountType = "current_liability"
	Payable             AccountType = "payable"
	Equity              AccountType = "equity"
	OperatingRevenue    AccountType = "operating_revenue"
	NonOperatingRevenue AccountType = "non_operating_revenue"
	OperatingExpense    AccountType = "operating_expense"
	DirectExpense       AccountType = "direct_expense"
	OverheadExpense     AccountType = "overhead_expense"
	OtherExpense        AccountType = "other_expense"
)

// normalSides is the data-driven rule table mapping each account type to the
// side that increases its balance. Assets and expenses are debit-normal,
// liabilities, equity and revenue are credit-normal.
var normalSides = map[AccountType]EntrySide{
	NonCurrentAsset:     Debit,
	ContraAsset:         Credit,
	Inventory:           Debit,
	Bank:                Debit,
	CurrentAsset:        Debit,
	Receivable:          Debit,
	NonCurrentLiability: Credit,
	ControlAccount:      Credit,
	CurrentLiability:    Credit,
	Payable:             Credit,
	Equity:              Credit,
	OperatingRevenue:    Credit,
	NonOperatingRevenue: Credit,
	OperatingExpense:    Debit,
	DirectExpense:       Debit,
	OverheadExpense:     Debit,
	OtherExpense:        Debit,
}

// Valid reports whether the account type is known.
func (t AccountType) Valid() bool {
	_, ok := normalSides[t]
	return ok
}

// NormalSide returns the side that increases balances of this account type.
func (t AccountType) NormalSide() EntrySide {
	return normalSides[t]
}

// BalanceSign returns +1 when side matches the account type's normal side
// and -1 otherwise. Balances are folds of sign-adjusted entry amounts.
func (t AccountType) BalanceSign(side EntrySide) decimal.Decimal {
	if side == t.NormalSide() {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(-1)
}

// Account is a chart-of-accounts node. Accounts are deactivated rather than
// deleted once they carry postings; the type is immutable after first posting.
type Account struct {
	ID        string
	EntityID  string
	Name      string
	Type      AccountType
	Currency  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the account's invariants.
func (a *Account) Validate() error {
	if !a.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAccountType, a.Type)
	}
	return ValidateCurrency(a.Currency)
}

// Deactivate marks the account inactive. Inactive accounts cannot receive
// new postings but remain part of historical balances.
func (a *Account) Deactivate(now time.Time) {
	a.Active = false
	a.UpdatedAt = now
}
