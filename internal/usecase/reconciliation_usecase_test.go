package usecase_test

import (
	"context"
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

func TestReconciliationUseCase_CheckEntityConsistency(t *testing.T) {
	ctx := context.Background()
	folio := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	newFixture := func() (*mocks.MockEntryRepository, *usecase.ReconciliationUseCase) {
		entries := mocks.NewMockEntryRepository()
		entries.AccountTypes["acc-ar"] = domain.Receivable
		entries.AccountTypes["acc-rev"] = domain.OperatingRevenue
		uc := usecase.NewReconciliationUseCase(entries, zerolog.Nop(), metrics.New(prometheus.NewRegistry()))
		return entries, uc
	}

	t.Run("balanced ledger is consistent", func(t *testing.T) {
		entries, uc := newFixture()
		entries.CreateBatch(ctx, nil, []*domain.LedgerEntry{
			{ID: "e-1", EntityID: "ent-1", TransactionID: "txn-1", AccountID: "acc-ar", FolioDate: folio, Amount: decimal.NewFromInt(1000), Side: domain.Debit, Currency: "USD"},
			{ID: "e-2", EntityID: "ent-1", TransactionID: "txn-1", AccountID: "acc-rev", FolioDate: folio, Amount: decimal.NewFromInt(1000), Side: domain.Credit, Currency: "USD"},
		})

		report, err := uc.CheckEntityConsistency(ctx, "ent-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Consistent {
			t.Error("expected consistent report")
		}
		if !report.TotalDebits.Equal(report.TotalCredits) {
			t.Errorf("debits %s != credits %s", report.TotalDebits, report.TotalCredits)
		}
		if !report.NetSigned.IsZero() {
			t.Errorf("expected zero net signed balance, got %s", report.NetSigned)
		}
	})

	t.Run("orphaned entry is flagged", func(t *testing.T) {
		entries, uc := newFixture()
		entries.CreateBatch(ctx, nil, []*domain.LedgerEntry{
			{ID: "e-1", EntityID: "ent-1", TransactionID: "txn-1", AccountID: "acc-ar", FolioDate: folio, Amount: decimal.NewFromInt(1000), Side: domain.Debit, Currency: "USD"},
		})

		report, err := uc.CheckEntityConsistency(ctx, "ent-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Consistent {
			t.Error("expected inconsistent report")
		}
		if !report.NetSigned.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected net signed 1000, got %s", report.NetSigned)
		}
	})

	t.Run("empty ledger is consistent", func(t *testing.T) {
		_, uc := newFixture()
		report, err := uc.CheckEntityConsistency(ctx, "ent-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Consistent {
			t.Error("expected consistent report for empty ledger")
		}
	})
}

func TestReconciliationUseCase_TrialBalance(t *testing.T) {
	ctx := context.Background()
	folio := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	entries := mocks.NewMockEntryRepository()
	entries.AccountTypes["acc-ar"] = domain.Receivable
	entries.AccountTypes["acc-rev"] = domain.OperatingRevenue
	uc := usecase.NewReconciliationUseCase(entries, zerolog.Nop(), metrics.New(prometheus.NewRegistry()))

	entries.CreateBatch(ctx, nil, []*domain.LedgerEntry{
		{ID: "e-1", EntityID: "ent-1", TransactionID: "txn-1", AccountID: "acc-ar", FolioDate: folio, Amount: decimal.NewFromInt(700), Side: domain.Debit, Currency: "USD"},
		{ID: "e-2", EntityID: "ent-1", TransactionID: "txn-1", AccountID: "acc-rev", FolioDate: folio, Amount: decimal.NewFromInt(700), Side: domain.Credit, Currency: "USD"},
		{ID: "e-3", EntityID: "ent-1", TransactionID: "txn-2", AccountID: "acc-ar", FolioDate: folio.AddDate(1, 0, 0), Amount: decimal.NewFromInt(50), Side: domain.Debit, Currency: "USD"},
	})

	rows, err := uc.TrialBalance(ctx, "ent-1", folio.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	byAccount := make(map[string]*usecase.AccountTotals)
	for _, row := range rows {
		byAccount[row.AccountID] = row
	}
	if !byAccount["acc-ar"].Debits.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected acc-ar debits 700, got %s", byAccount["acc-ar"].Debits)
	}
	if !byAccount["acc-rev"].Credits.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected acc-rev credits 700, got %s", byAccount["acc-rev"].Credits)
	}
}
