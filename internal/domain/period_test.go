package domain

import (
	"errors"
	"testing"
	"time"
)

func period(status PeriodStatus) *ReportingPeriod {
	return &ReportingPeriod{
		ID:          "per-1",
		EntityID:    "ent-1",
		Start:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodCount: 3,
		Status:      status,
	}
}

func TestReportingPeriod_Contains(t *testing.T) {
	p := period(PeriodOpen)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"start inclusive", p.Start, true},
		{"mid period", time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"end exclusive", p.End, false},
		{"before start", p.Start.Add(-time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestReportingPeriod_CanPost(t *testing.T) {
	tests := []struct {
		name    string
		status  PeriodStatus
		txType  TransactionType
		wantErr error
	}{
		{"open accepts anything", PeriodOpen, ClientInvoice, nil},
		{"closed rejects everything", PeriodClosed, ClientInvoice, ErrClosedPeriod},
		{"closed rejects journal entries too", PeriodClosed, JournalEntry, ErrClosedPeriod},
		{"adjusting rejects invoices", PeriodAdjusting, ClientInvoice, ErrAdjustingPeriod},
		{"adjusting accepts journal entries", PeriodAdjusting, JournalEntry, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := period(tt.status).CanPost(tt.txType)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReportingPeriod_CloseReopen(t *testing.T) {
	now := time.Now().UTC()
	p := period(PeriodOpen)

	p.Close(now)
	if p.Status != PeriodClosed {
		t.Fatalf("status = %s, want closed", p.Status)
	}

	// Reopening is explicit; posting never does this implicitly.
	p.Reopen(now)
	if p.Status != PeriodOpen {
		t.Fatalf("status = %s, want open", p.Status)
	}
}
