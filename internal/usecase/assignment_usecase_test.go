package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/acctledger/internal/domain"
	"github.com/iho/acctledger/internal/infrastructure/metrics"
	"github.com/iho/acctledger/internal/usecase"
	"github.com/iho/acctledger/internal/usecase/mocks"
)

type assignmentFixture struct {
	txns        *mocks.MockTransactionRepository
	entries     *mocks.MockEntryRepository
	assignments *mocks.MockAssignmentRepository
	uc          *usecase.AssignmentUseCase
}

func newAssignmentFixture(t *testing.T) *assignmentFixture {
	t.Helper()

	f := &assignmentFixture{
		txns:        mocks.NewMockTransactionRepository(),
		entries:     mocks.NewMockEntryRepository(),
		assignments: mocks.NewMockAssignmentRepository(),
	}

	f.uc = usecase.NewAssignmentUseCase(
		mocks.NewMockTxManager(),
		f.txns,
		f.entries,
		f.assignments,
		mocks.NewMockIDGenerator(),
		zerolog.Nop(),
		metrics.New(prometheus.NewRegistry()),
	)

	return f
}

// seedPosted stores a posted transaction with a balanced pair of entries so
// its posted amount derives from the ledger, as in production.
func (f *assignmentFixture) seedPosted(id string, txType domain.TransactionType, currency string, amount int64, date time.Time) {
	f.txns.Seed(&domain.Transaction{
		ID:       id,
		EntityID: "ent-1",
		Date:     date,
		Currency: currency,
		Type:     txType,
		Status:   domain.StatusPosted,
	})
	f.entries.CreateBatch(context.Background(), nil, []*domain.LedgerEntry{
		{ID: id + "-d", EntityID: "ent-1", TransactionID: id, AccountID: "acc-d", FolioDate: date, Amount: decimal.NewFromInt(amount), Side: domain.Debit, Currency: currency},
		{ID: id + "-c", EntityID: "ent-1", TransactionID: id, AccountID: "acc-c", FolioDate: date, Amount: decimal.NewFromInt(amount), Side: domain.Credit, Currency: currency},
	})
}

// outstanding reports the transaction's outstanding balance through the
// balance API, over the same stores the assignment use case writes.
func (f *assignmentFixture) outstanding(t *testing.T, id string) domain.Money {
	t.Helper()

	balances := usecase.NewBalanceUseCase(
		mocks.NewMockAccountRepository(),
		f.txns,
		f.entries,
		f.assignments,
		mocks.NewMockBalanceCache(),
		zerolog.Nop(),
		metrics.New(prometheus.NewRegistry()),
	)

	money, err := balances.Outstanding(context.Background(), id)
	if err != nil {
		t.Fatalf("outstanding(%s): %v", id, err)
	}
	return money
}

func TestAssignmentUseCase_Assign(t *testing.T) {
	ctx := context.Background()
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("fifo clears oldest invoice first", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-inv-feb", domain.ClientInvoice, "USD", 500, feb)
		f.seedPosted("txn-inv-jan", domain.ClientInvoice, "USD", 1000, jan)
		f.seedPosted("txn-rcpt", domain.ClientReceipt, "USD", 600, mar)

		assignments, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv-feb", "txn-inv-jan"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(assignments) != 1 {
			t.Fatalf("expected 1 assignment, got %d", len(assignments))
		}
		if assignments[0].ClearableID != "txn-inv-jan" {
			t.Errorf("expected oldest invoice cleared first, got %s", assignments[0].ClearableID)
		}
		if !assignments[0].Amount.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected 600 assigned, got %s", assignments[0].Amount)
		}
	})

	t.Run("fifo spills into the next invoice", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-inv-jan", domain.ClientInvoice, "USD", 1000, jan)
		f.seedPosted("txn-inv-feb", domain.ClientInvoice, "USD", 500, feb)
		f.seedPosted("txn-rcpt", domain.ClientReceipt, "USD", 1200, mar)

		assignments, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv-jan", "txn-inv-feb"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(assignments) != 2 {
			t.Fatalf("expected 2 assignments, got %d", len(assignments))
		}
		if !assignments[0].Amount.Equal(decimal.NewFromInt(1000)) || !assignments[1].Amount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected 1000 then 200, got %s then %s", assignments[0].Amount, assignments[1].Amount)
		}
	})

	t.Run("already assigned amounts reduce capacity", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-inv", domain.ClientInvoice, "USD", 1000, jan)
		f.seedPosted("txn-rcpt", domain.ClientReceipt, "USD", 600, mar)
		f.assignments.Create(ctx, nil, &domain.Assignment{
			ID: "asg-prior", EntityID: "ent-1",
			ClearingID: "txn-rcpt", ClearableID: "txn-other",
			Amount: decimal.NewFromInt(450), ClearableAmount: decimal.NewFromInt(450),
		})

		assignments, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(assignments) != 1 {
			t.Fatalf("expected 1 assignment, got %d", len(assignments))
		}
		if !assignments[0].Amount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected remaining 150 assigned, got %s", assignments[0].Amount)
		}
	})

	t.Run("manual strategy respects explicit amounts", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-inv-jan", domain.ClientInvoice, "USD", 1000, jan)
		f.seedPosted("txn-inv-feb", domain.ClientInvoice, "USD", 500, feb)
		f.seedPosted("txn-rcpt", domain.ClientReceipt, "USD", 600, mar)

		assignments, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv-jan", "txn-inv-feb"},
			Strategy: domain.ManualStrategy(map[string]decimal.Decimal{
				"txn-inv-jan": decimal.NewFromInt(100),
				"txn-inv-feb": decimal.NewFromInt(500),
			}),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(assignments) != 2 {
			t.Fatalf("expected 2 assignments, got %d", len(assignments))
		}
	})

	t.Run("manual over-assignment is rejected", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-inv", domain.ClientInvoice, "USD", 500, jan)
		f.seedPosted("txn-rcpt", domain.ClientReceipt, "USD", 600, mar)

		_, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv"},
			Strategy: domain.ManualStrategy(map[string]decimal.Decimal{
				"txn-inv": decimal.NewFromInt(550),
			}),
		})
		if !errors.Is(err, domain.ErrOverAssignment) {
			t.Fatalf("expected ErrOverAssignment, got %v", err)
		}
		if got, _ := f.assignments.SumByTransaction(ctx, "txn-inv"); !got.IsZero() {
			t.Errorf("expected no assignments persisted, got %s", got)
		}
	})

	t.Run("self clearance is rejected", func(t *testing.T) {
		f := newAssignmentFixture(t)
		_, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-rcpt"},
		})
		if !errors.Is(err, domain.ErrSelfClearance) {
			t.Fatalf("expected ErrSelfClearance, got %v", err)
		}
	})

	t.Run("draft clearing is rejected", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-inv", domain.ClientInvoice, "USD", 1000, jan)
		f.txns.Seed(&domain.Transaction{
			ID: "txn-rcpt", EntityID: "ent-1", Date: mar,
			Currency: "USD", Type: domain.ClientReceipt, Status: domain.StatusDraft,
		})

		_, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv"},
		})
		if !errors.Is(err, domain.ErrUnpostedAssignment) {
			t.Fatalf("expected ErrUnpostedAssignment, got %v", err)
		}
	})

	t.Run("invoice cannot clear", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-inv-1", domain.ClientInvoice, "USD", 1000, jan)
		f.seedPosted("txn-inv-2", domain.ClientInvoice, "USD", 500, feb)

		_, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-inv-1",
			CandidateIDs: []string{"txn-inv-2"},
		})
		if !errors.Is(err, domain.ErrUnassignableTransaction) {
			t.Fatalf("expected ErrUnassignableTransaction, got %v", err)
		}
	})

	t.Run("receipt cannot be cleared", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-rcpt-1", domain.ClientReceipt, "USD", 600, jan)
		f.seedPosted("txn-rcpt-2", domain.ClientReceipt, "USD", 600, feb)

		_, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt-2",
			CandidateIDs: []string{"txn-rcpt-1"},
		})
		if !errors.Is(err, domain.ErrUnclearableTransaction) {
			t.Fatalf("expected ErrUnclearableTransaction, got %v", err)
		}
	})

	t.Run("currency mismatch without a rate", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-inv", domain.ClientInvoice, "EUR", 1000, jan)
		f.seedPosted("txn-rcpt", domain.ClientReceipt, "USD", 600, mar)

		_, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv"},
		})
		if !errors.Is(err, domain.ErrCurrencyMismatch) {
			t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
		}
	})

	t.Run("currency mismatch with a rate translates the candidate", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-inv", domain.ClientInvoice, "EUR", 500, jan)
		f.seedPosted("txn-rcpt", domain.ClientReceipt, "USD", 600, mar)

		assignments, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv"},
			Rate: &domain.ExchangeRate{
				From: "EUR", To: "USD",
				Rate: decimal.NewFromFloat(1.1),
				AsOf: mar,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(assignments) != 1 {
			t.Fatalf("expected 1 assignment, got %d", len(assignments))
		}
		// 500 EUR at 1.1 is 550 USD, all of it clearable by the 600 receipt.
		if !assignments[0].Amount.Equal(decimal.NewFromInt(550)) {
			t.Errorf("expected 550 on the clearing side, got %s", assignments[0].Amount)
		}
		if !assignments[0].ClearableAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected 500 on the clearable side, got %s", assignments[0].ClearableAmount)
		}

		// Each side's outstanding balance shrinks in its own currency: the
		// invoice is fully cleared, never driven negative by the USD figure.
		invoice := f.outstanding(t, "txn-inv")
		if !invoice.Amount.IsZero() || invoice.Currency != "EUR" {
			t.Errorf("expected invoice fully cleared, got %s", invoice)
		}
		receipt := f.outstanding(t, "txn-rcpt")
		if !receipt.Amount.Equal(decimal.NewFromInt(50)) || receipt.Currency != "USD" {
			t.Errorf("expected 50 USD left on the receipt, got %s", receipt)
		}
	})

	t.Run("unknown candidate", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-rcpt", domain.ClientReceipt, "USD", 600, mar)

		_, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-missing"},
		})
		if !errors.Is(err, domain.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("transient conflict is replayed through the retrier", func(t *testing.T) {
		f := newAssignmentFixture(t)
		retrier := &countingRetrier{}
		f.uc.WithRetrier(retrier)
		f.seedPosted("txn-inv", domain.ClientInvoice, "USD", 1000, jan)
		f.seedPosted("txn-rcpt", domain.ClientReceipt, "USD", 600, mar)

		// First write attempt aborts, as if the row lock deadlocked; the
		// replay goes through the mock's default storage path.
		f.assignments.CreateFunc = func(ctx context.Context, tx usecase.Tx, assignment *domain.Assignment) error {
			f.assignments.CreateFunc = nil
			return errors.New("deadlock detected")
		}

		assignments, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if retrier.attempts != 2 {
			t.Errorf("expected 2 attempts, got %d", retrier.attempts)
		}
		if len(assignments) != 1 {
			t.Fatalf("expected 1 assignment, got %d", len(assignments))
		}
		if !assignments[0].Amount.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected 600 assigned, got %s", assignments[0].Amount)
		}

		// The aborted attempt left nothing behind.
		if got, _ := f.assignments.SumByTransaction(ctx, "txn-inv"); !got.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected 600 assigned in total, got %s", got)
		}
		if money := f.outstanding(t, "txn-inv"); !money.Amount.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected 400 outstanding, got %s", money.Amount)
		}
	})
}

func TestAssignmentUseCase_Unassign(t *testing.T) {
	ctx := context.Background()
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("reversal restores outstanding balances", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.seedPosted("txn-inv", domain.ClientInvoice, "USD", 1000, jan)
		f.seedPosted("txn-rcpt", domain.ClientReceipt, "USD", 600, mar)

		assignments, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := f.uc.Unassign(ctx, assignments[0].ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got, _ := f.assignments.SumByTransaction(ctx, "txn-inv"); !got.IsZero() {
			t.Errorf("expected zero assigned after reversal, got %s", got)
		}

		// The full capacity is available again.
		again, err := f.uc.Assign(ctx, usecase.AssignInput{
			ClearingID:   "txn-rcpt",
			CandidateIDs: []string{"txn-inv"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again[0].Amount.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected 600 reassigned, got %s", again[0].Amount)
		}
	})

	t.Run("unknown assignment", func(t *testing.T) {
		f := newAssignmentFixture(t)
		err := f.uc.Unassign(ctx, "asg-missing")
		if !errors.Is(err, domain.ErrAssignmentNotFound) {
			t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
		}
	})
}
