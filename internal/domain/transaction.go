package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a transaction.
// draft -> posted -> voided; drafts may be discarded, nothing leaves voided.
type TransactionStatus string

const (
	StatusDraft  TransactionStatus = "draft"
	StatusPosted TransactionStatus = "posted"
	StatusVoided TransactionStatus = "voided"
)

// TransactionType identifies the business document a transaction records.
type TransactionType string

const (
	ClientInvoice   TransactionType = "client_invoice"
	SupplierBill    TransactionType = "supplier_bill"
	CashSale        TransactionType = "cash_sale"
	CashPurchase    TransactionType = "cash_purchase"
	ClientReceipt   TransactionType = "client_receipt"
	SupplierPayment TransactionType = "supplier_payment"
	CreditNote      TransactionType = "credit_note"
	DebitNote       TransactionType = "debit_note"
	ContraEntry     TransactionType = "contra_entry"
	JournalEntry    TransactionType = "journal_entry"
)

// typeRule captures the per-type validation and clearing behavior. Empty
// account-type lists mean any account type is allowed.
type typeRule struct {
	prefix           string
	mainAccountTypes []AccountType
	lineAccountTypes []AccountType
	clearable        bool
	assignable       bool
	noTax            bool
}

var revenueTypes = []AccountType{OperatingRevenue, NonOperatingRevenue}

var expenseTypes = []AccountType{
	OperatingExpense, DirectExpense, OverheadExpense, OtherExpense,
	NonCurrentAsset, Inventory, CurrentAsset,
}

var typeRules = map[TransactionType]typeRule{
	ClientInvoice: {
		prefix:           "IN",
		mainAccountTypes: []AccountType{Receivable},
		lineAccountTypes: revenueTypes,
		clearable:        true,
	},
	SupplierBill: {
		prefix:           "BL",
		mainAccountTypes: []AccountType{Payable},
		lineAccountTypes: expenseTypes,
		clearable:        true,
	},
	CashSale: {
		prefix:           "CS",
		mainAccountTypes: []AccountType{Bank},
		lineAccountTypes: revenueTypes,
	},
	CashPurchase: {
		prefix:           "CP",
		mainAccountTypes: []AccountType{Bank},
		lineAccountTypes: expenseTypes,
	},
	ClientReceipt: {
		prefix:           "RC",
		mainAccountTypes: []AccountType{Receivable},
		lineAccountTypes: []AccountType{Bank},
		assignable:       true,
		noTax:            true,
	},
	SupplierPayment: {
		prefix:           "PY",
		mainAccountTypes: []AccountType{Payable},
		lineAccountTypes: []AccountType{Bank},
		assignable:       true,
		noTax:            true,
	},
	CreditNote: {
		prefix:           "CN",
		mainAccountTypes: []AccountType{Receivable},
		lineAccountTypes: revenueTypes,
		clearable:        true,
		assignable:       true,
	},
	DebitNote: {
		prefix:           "DN",
		mainAccountTypes: []AccountType{Payable},
		lineAccountTypes: expenseTypes,
		clearable:        true,
		assignable:       true,
	},
	ContraEntry: {
		prefix:           "CE",
		mainAccountTypes: []AccountType{Bank},
		lineAccountTypes: []AccountType{Bank},
		noTax:            true,
	},
	JournalEntry: {
		prefix:     "JN",
		clearable:  true,
		assignable: true,
	},
}

// Valid reports whether the transaction type is known.
func (t TransactionType) Valid() bool {
	_, ok := typeRules[t]
	return ok
}

// Prefix returns the transaction-number prefix for the type.
func (t TransactionType) Prefix() string {
	return typeRules[t].prefix
}

// Clearable reports whether transactions of this type carry an outstanding
// balance that can be matched against clearing transactions.
func (t TransactionType) Clearable() bool {
	return typeRules[t].clearable
}

// Assignable reports whether transactions of this type can clear others.
func (t TransactionType) Assignable() bool {
	return typeRules[t].assignable
}

// LineItem is one leg of a transaction's double entry. Amount is a unit
// amount in the transaction's currency; the posted total is Amount*Quantity.
// TaxIDs lists taxes to expand, in application order.
type LineItem struct {
	ID          string
	AccountID   string
	Amount      decimal.Decimal
	Quantity    decimal.Decimal
	Side        EntrySide
	TaxIDs      []string
	TaxOfLineID string
	Description string
	Ordinal     int
}

// Total is the line's full amount.
func (li LineItem) Total() decimal.Decimal {
	return li.Amount.Mul(li.Quantity)
}

// Transaction is an intent to move value, built from line items. Date is the
// folio date used for ledger ordering; CreatedAt is the record timestamp.
type Transaction struct {
	ID            string
	EntityID      string
	TransactionNo string
	Date          time.Time
	Narration     string
	Reference     string
	Currency      string
	Type          TransactionType
	Status        TransactionStatus
	MainAccountID string
	LineItems     []LineItem
	CompensatesID *string
	VoidedAt      *time.Time
	VoidReason    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsPosted reports whether the transaction has ledger effect.
func (t *Transaction) IsPosted() bool {
	return t.Status == StatusPosted
}

// AddLineItem appends a line item to a draft transaction.
func (t *Transaction) AddLineItem(li LineItem) error {
	if t.Status != StatusDraft {
		return fmt.Errorf("%w: cannot add line items", ErrPostedTransaction)
	}
	li.Ordinal = len(t.LineItems)
	t.LineItems = append(t.LineItems, li)
	return nil
}

// Expanded builds the full line-item set with tax lines appended per base
// line, in order. Ordinals are reassigned over the expanded sequence so that
// ledger replay ordering is stable.
func (t *Transaction) Expanded(taxes map[string]*Tax) ([]LineItem, error) {
	var expanded []LineItem
	for _, li := range t.LineItems {
		lineTaxes := make([]*Tax, 0, len(li.TaxIDs))
		for _, taxID := range li.TaxIDs {
			tax, ok := taxes[taxID]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrTaxNotFound, taxID)
			}
			lineTaxes = append(lineTaxes, tax)
		}

		if len(lineTaxes) > 0 && typeRules[t.Type].noTax {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTaxCharge, t.Type)
		}

		lines, err := ExpandLineItem(li, lineTaxes)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, lines...)
	}

	for i := range expanded {
		expanded[i].Ordinal = i
	}
	return expanded, nil
}

// Amount is the transaction total: the sum of expanded debit-side totals,
// which equals the credit side for a balanced transaction.
func (t *Transaction) Amount(taxes map[string]*Tax) (decimal.Decimal, error) {
	expanded, err := t.Expanded(taxes)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, li := range expanded {
		if li.Side == Debit {
			total = total.Add(li.Total())
		}
	}
	return total, nil
}

// Validate checks the transaction against its type rules and the double-entry
// invariant: after tax expansion, debits must equal credits within half of the
// smallest currency unit. It performs no I/O; accounts and taxes referenced by
// the transaction are supplied by the caller.
func (t *Transaction) Validate(accounts map[string]*Account, taxes map[string]*Tax) error {
	if t.Status != StatusDraft {
		return ErrPostedTransaction
	}
	if !t.Type.Valid() {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	if err := ValidateCurrency(t.Currency); err != nil {
		return err
	}

	rule := typeRules[t.Type]

	if t.MainAccountID != "" {
		main, ok := accounts[t.MainAccountID]
		if !ok {
			return fmt.Errorf("%w: main account %s", ErrAccountNotFound, t.MainAccountID)
		}
		if !main.Active {
			return fmt.Errorf("%w: main account %s", ErrInactiveAccount, t.MainAccountID)
		}
		if len(rule.mainAccountTypes) > 0 && !containsType(rule.mainAccountTypes, main.Type) {
			return fmt.Errorf("%w: %s main account must be one of %v, got %s",
				ErrInvalidAccountType, t.Type, rule.mainAccountTypes, main.Type)
		}
	}

	mainLines := 0
	for _, li := range t.LineItems {
		if li.AccountID == t.MainAccountID && t.MainAccountID != "" {
			// The main side of the entry; one line only, exempt from the
			// line-item account type rule.
			mainLines++
			if mainLines > 1 {
				return fmt.Errorf("%w: account %s", ErrRedundantTransaction, t.MainAccountID)
			}
			continue
		}
		account, ok := accounts[li.AccountID]
		if !ok {
			return fmt.Errorf("%w: line item account %s", ErrAccountNotFound, li.AccountID)
		}
		if !account.Active {
			return fmt.Errorf("%w: line item account %s", ErrInactiveAccount, li.AccountID)
		}
		if len(rule.lineAccountTypes) > 0 && !containsType(rule.lineAccountTypes, account.Type) {
			return fmt.Errorf("%w: %s line items must be one of %v, got %s",
				ErrInvalidAccountType, t.Type, rule.lineAccountTypes, account.Type)
		}
	}

	expanded, err := t.Expanded(taxes)
	if err != nil {
		return err
	}
	if len(expanded) < 2 {
		return ErrMissingLineItems
	}

	debits, credits := decimal.Zero, decimal.Zero
	for _, li := range expanded {
		if li.Total().IsNegative() {
			return fmt.Errorf("%w: line item %d", ErrInvalidAmount, li.Ordinal)
		}
		if li.Side == Debit {
			debits = debits.Add(li.Total())
		} else {
			credits = credits.Add(li.Total())
		}
	}

	if debits.Sub(credits).Abs().GreaterThan(Tolerance(t.Currency)) {
		return fmt.Errorf("%w: debits %s, credits %s", ErrUnbalancedTransaction, debits, credits)
	}

	return nil
}

// MarkPosted transitions draft -> posted and freezes the line items.
func (t *Transaction) MarkPosted(now time.Time) error {
	switch t.Status {
	case StatusDraft:
		t.Status = StatusPosted
		t.UpdatedAt = now
		return nil
	case StatusPosted:
		return ErrPostedTransaction
	default:
		return ErrAlreadyVoided
	}
}

// MarkVoided transitions posted -> voided. The ledger effect is nullified by
// a compensating transaction, never by touching the original entries.
func (t *Transaction) MarkVoided(now time.Time, reason string) error {
	switch t.Status {
	case StatusVoided:
		return ErrAlreadyVoided
	case StatusDraft:
		return ErrUnpostedTransaction
	}
	t.Status = StatusVoided
	t.VoidedAt = &now
	t.VoidReason = reason
	t.UpdatedAt = now
	return nil
}

func containsType(types []AccountType, t AccountType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
