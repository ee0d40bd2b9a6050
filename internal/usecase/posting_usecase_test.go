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

type postingFixture struct {
	accounts *mocks.MockAccountRepository
	txns     *mocks.MockTransactionRepository
	entries  *mocks.MockEntryRepository
	periods  *mocks.MockPeriodRepository
	taxes    *mocks.MockTaxRepository
	cache    *mocks.MockBalanceCache
	uc       *usecase.PostingUseCase
}

func newPostingFixture(t *testing.T) *postingFixture {
	t.Helper()

	f := &postingFixture{
		accounts: mocks.NewMockAccountRepository(),
		txns:     mocks.NewMockTransactionRepository(),
		entries:  mocks.NewMockEntryRepository(),
		periods:  mocks.NewMockPeriodRepository(),
		taxes:    mocks.NewMockTaxRepository(),
		cache:    mocks.NewMockBalanceCache(),
	}

	f.uc = usecase.NewPostingUseCase(
		mocks.NewMockTxManager(),
		f.accounts,
		f.txns,
		f.entries,
		f.periods,
		f.taxes,
		mocks.NewMockIDGenerator(),
		f.cache,
		zerolog.Nop(),
		metrics.New(prometheus.NewRegistry()),
	)

	ctx := context.Background()

	for _, acc := range []*domain.Account{
		{ID: "acc-ar", EntityID: "ent-1", Name: "Trade Receivables", Type: domain.Receivable, Currency: "USD", Active: true},
		{ID: "acc-rev", EntityID: "ent-1", Name: "Sales", Type: domain.OperatingRevenue, Currency: "USD", Active: true},
		{ID: "acc-bank", EntityID: "ent-1", Name: "Main Bank", Type: domain.Bank, Currency: "USD", Active: true},
		{ID: "acc-vat", EntityID: "ent-1", Name: "VAT Output", Type: domain.ControlAccount, Currency: "USD", Active: true},
	} {
		if err := f.accounts.Create(ctx, acc); err != nil {
			t.Fatalf("seed account: %v", err)
		}
	}

	f.periods.Create(ctx, &domain.ReportingPeriod{
		ID:          "per-2026",
		EntityID:    "ent-1",
		Start:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodCount: 3,
		Status:      domain.PeriodOpen,
	})

	return f
}

func (f *postingFixture) setPeriodStatus(t *testing.T, status domain.PeriodStatus) {
	t.Helper()
	if err := f.periods.UpdateStatus(context.Background(), "per-2026", status, time.Now()); err != nil {
		t.Fatalf("set period status: %v", err)
	}
}

func draftInvoice(id string, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:            id,
		EntityID:      "ent-1",
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Narration:     "March services",
		Currency:      "USD",
		Type:          domain.ClientInvoice,
		Status:        domain.StatusDraft,
		MainAccountID: "acc-ar",
		LineItems: []domain.LineItem{
			{AccountID: "acc-ar", Amount: decimal.NewFromInt(amount), Quantity: decimal.NewFromInt(1), Side: domain.Debit, Ordinal: 0},
			{AccountID: "acc-rev", Amount: decimal.NewFromInt(amount), Quantity: decimal.NewFromInt(1), Side: domain.Credit, Ordinal: 1},
		},
	}
}

func TestPostingUseCase_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("posts balanced invoice", func(t *testing.T) {
		f := newPostingFixture(t)
		txn := draftInvoice("txn-1", 1000)

		entries, err := f.uc.Post(ctx, txn)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if txn.Status != domain.StatusPosted {
			t.Errorf("expected posted status, got %s", txn.Status)
		}
		if txn.TransactionNo != "IN03/0001" {
			t.Errorf("expected transaction number IN03/0001, got %s", txn.TransactionNo)
		}

		debits, credits := decimal.Zero, decimal.Zero
		for _, e := range entries {
			if e.Side == domain.Debit {
				debits = debits.Add(e.Amount)
			} else {
				credits = credits.Add(e.Amount)
			}
			if !e.FolioDate.Equal(txn.Date) {
				t.Errorf("expected folio date %s, got %s", txn.Date, e.FolioDate)
			}
		}
		if !debits.Equal(credits) {
			t.Errorf("debits %s != credits %s", debits, credits)
		}

		if len(f.cache.Invalidations) != 2 {
			t.Errorf("expected 2 cache invalidations, got %d", len(f.cache.Invalidations))
		}
	})

	t.Run("repost is a no-op returning existing entries", func(t *testing.T) {
		f := newPostingFixture(t)
		txn := draftInvoice("txn-1", 1000)

		first, err := f.uc.Post(ctx, txn)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := f.uc.Post(ctx, txn)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(second) != len(first) {
			t.Errorf("expected %d entries, got %d", len(first), len(second))
		}
		if got := len(f.entries.Entries()); got != 2 {
			t.Errorf("expected 2 stored entries after repost, got %d", got)
		}
	})

	t.Run("sequence advances per type within period", func(t *testing.T) {
		f := newPostingFixture(t)

		if _, err := f.uc.Post(ctx, draftInvoice("txn-1", 100)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second := draftInvoice("txn-2", 200)
		if _, err := f.uc.Post(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if second.TransactionNo != "IN03/0002" {
			t.Errorf("expected IN03/0002, got %s", second.TransactionNo)
		}
	})

	t.Run("rejects unbalanced transaction", func(t *testing.T) {
		f := newPostingFixture(t)
		txn := draftInvoice("txn-1", 1000)
		txn.LineItems[1].Amount = decimal.NewFromInt(999)

		_, err := f.uc.Post(ctx, txn)
		if !errors.Is(err, domain.ErrUnbalancedTransaction) {
			t.Fatalf("expected ErrUnbalancedTransaction, got %v", err)
		}
		if got := len(f.entries.Entries()); got != 0 {
			t.Errorf("expected no entries, got %d", got)
		}
	})

	t.Run("rejects posting into closed period", func(t *testing.T) {
		f := newPostingFixture(t)
		f.setPeriodStatus(t, domain.PeriodClosed)

		_, err := f.uc.Post(ctx, draftInvoice("txn-1", 1000))
		if !errors.Is(err, domain.ErrClosedPeriod) {
			t.Fatalf("expected ErrClosedPeriod, got %v", err)
		}
		if got := len(f.entries.Entries()); got != 0 {
			t.Errorf("expected no entries, got %d", got)
		}
	})

	t.Run("adjusting period accepts journal entries only", func(t *testing.T) {
		f := newPostingFixture(t)
		f.setPeriodStatus(t, domain.PeriodAdjusting)

		_, err := f.uc.Post(ctx, draftInvoice("txn-1", 1000))
		if !errors.Is(err, domain.ErrAdjustingPeriod) {
			t.Fatalf("expected ErrAdjustingPeriod, got %v", err)
		}

		journal := &domain.Transaction{
			ID:        "txn-2",
			EntityID:  "ent-1",
			Date:      time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			Narration: "Year-end accrual",
			Currency:  "USD",
			Type:      domain.JournalEntry,
			Status:    domain.StatusDraft,
			LineItems: []domain.LineItem{
				{AccountID: "acc-rev", Amount: decimal.NewFromInt(50), Quantity: decimal.NewFromInt(1), Side: domain.Debit, Ordinal: 0},
				{AccountID: "acc-ar", Amount: decimal.NewFromInt(50), Quantity: decimal.NewFromInt(1), Side: domain.Credit, Ordinal: 1},
			},
		}
		if _, err := f.uc.Post(ctx, journal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if journal.TransactionNo != "JN03/0001" {
			t.Errorf("expected JN03/0001, got %s", journal.TransactionNo)
		}
	})

	t.Run("rejects inactive account", func(t *testing.T) {
		f := newPostingFixture(t)
		if err := f.accounts.Deactivate(ctx, "acc-rev", time.Now()); err != nil {
			t.Fatalf("deactivate: %v", err)
		}

		_, err := f.uc.Post(ctx, draftInvoice("txn-1", 1000))
		if !errors.Is(err, domain.ErrInactiveAccount) {
			t.Fatalf("expected ErrInactiveAccount, got %v", err)
		}
	})

	t.Run("rejects voided transaction", func(t *testing.T) {
		f := newPostingFixture(t)
		txn := draftInvoice("txn-1", 1000)
		txn.Status = domain.StatusVoided

		_, err := f.uc.Post(ctx, txn)
		if !errors.Is(err, domain.ErrAlreadyVoided) {
			t.Fatalf("expected ErrAlreadyVoided, got %v", err)
		}
	})

	t.Run("expands exclusive tax into control account entry", func(t *testing.T) {
		f := newPostingFixture(t)
		f.taxes.Create(ctx, &domain.Tax{
			ID:        "tax-vat",
			EntityID:  "ent-1",
			Code:      "VAT",
			Name:      "Value Added Tax",
			Rate:      decimal.NewFromInt(16),
			AccountID: "acc-vat",
		})

		txn := &domain.Transaction{
			ID:            "txn-1",
			EntityID:      "ent-1",
			Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			Narration:     "Taxed sale",
			Currency:      "USD",
			Type:          domain.ClientInvoice,
			Status:        domain.StatusDraft,
			MainAccountID: "acc-ar",
			LineItems: []domain.LineItem{
				{AccountID: "acc-ar", Amount: decimal.NewFromInt(1160), Quantity: decimal.NewFromInt(1), Side: domain.Debit, Ordinal: 0},
				{AccountID: "acc-rev", Amount: decimal.NewFromInt(1000), Quantity: decimal.NewFromInt(1), Side: domain.Credit, TaxIDs: []string{"tax-vat"}, Ordinal: 1},
			},
		}

		entries, err := f.uc.Post(ctx, txn)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}

		var taxEntry *domain.LedgerEntry
		for _, e := range entries {
			if e.AccountID == "acc-vat" {
				taxEntry = e
			}
		}
		if taxEntry == nil {
			t.Fatal("expected an entry on the tax control account")
		}
		if !taxEntry.Amount.Equal(decimal.NewFromInt(160)) {
			t.Errorf("expected tax amount 160, got %s", taxEntry.Amount)
		}
		if taxEntry.Side != domain.Credit {
			t.Errorf("expected tax entry on credit side, got %s", taxEntry.Side)
		}
	})

	t.Run("no period covering the date", func(t *testing.T) {
		f := newPostingFixture(t)
		txn := draftInvoice("txn-1", 1000)
		txn.Date = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

		_, err := f.uc.Post(ctx, txn)
		if !errors.Is(err, domain.ErrPeriodNotFound) {
			t.Fatalf("expected ErrPeriodNotFound, got %v", err)
		}
	})

	t.Run("transient conflict is replayed through the retrier", func(t *testing.T) {
		f := newPostingFixture(t)
		retrier := &countingRetrier{}
		f.uc.WithRetrier(retrier)

		// First write attempt aborts, as if the row lock deadlocked; the
		// replay goes through the mock's default storage path.
		f.txns.CreateFunc = func(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) error {
			f.txns.CreateFunc = nil
			return errors.New("deadlock detected")
		}

		txn := draftInvoice("txn-1", 1000)
		entries, err := f.uc.Post(ctx, txn)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if retrier.attempts != 2 {
			t.Errorf("expected 2 attempts, got %d", retrier.attempts)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if txn.Status != domain.StatusPosted {
			t.Errorf("expected posted status, got %s", txn.Status)
		}
		if txn.TransactionNo != "IN03/0001" {
			t.Errorf("expected transaction number IN03/0001, got %s", txn.TransactionNo)
		}
		if got := len(f.entries.Entries()); got != 2 {
			t.Errorf("expected 2 stored entries after replay, got %d", got)
		}
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		f := newPostingFixture(t)
		retrier := &countingRetrier{}
		f.uc.WithRetrier(retrier)

		txn := draftInvoice("txn-1", 1000)
		txn.LineItems[1].Amount = decimal.NewFromInt(999)

		if _, err := f.uc.Post(ctx, txn); !errors.Is(err, domain.ErrUnbalancedTransaction) {
			t.Fatalf("expected ErrUnbalancedTransaction, got %v", err)
		}
		if retrier.attempts != 0 {
			t.Errorf("expected validation to fail before any write attempt, got %d", retrier.attempts)
		}
	})
}

// countingRetrier replays a failed operation once, standing in for the
// backoff retrier without its timing.
type countingRetrier struct {
	attempts int
}

func (r *countingRetrier) Retry(ctx context.Context, operation func() error) error {
	var err error
	for i := 0; i < 2; i++ {
		r.attempts++
		if err = operation(); err == nil {
			return nil
		}
	}
	return err
}
