package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMoney_AddSub(t *testing.T) {
	a := NewMoney(decimal.NewFromInt(100), "USD")
	b := NewMoney(decimal.NewFromInt(40), "USD")

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sum.Amount.Equal(decimal.NewFromInt(140)) {
		t.Errorf("expected 140, got %s", sum.Amount)
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !diff.Amount.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected 60, got %s", diff.Amount)
	}
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	usd := NewMoney(decimal.NewFromInt(1), "USD")
	eur := NewMoney(decimal.NewFromInt(1), "EUR")

	if _, err := usd.Add(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Add: expected ErrCurrencyMismatch, got %v", err)
	}

	if _, err := usd.Sub(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Sub: expected ErrCurrencyMismatch, got %v", err)
	}

	if _, err := usd.WithinTolerance(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("WithinTolerance: expected ErrCurrencyMismatch, got %v", err)
	}
}

func TestTolerance(t *testing.T) {
	tests := []struct {
		currency string
		want     string
	}{
		{"USD", "0.005"},
		{"JPY", "0.5"},
		{"BHD", "0.0005"},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			want, _ := decimal.NewFromString(tt.want)
			if got := Tolerance(tt.currency); !got.Equal(want) {
				t.Errorf("Tolerance(%s) = %s, want %s", tt.currency, got, want)
			}
		})
	}
}

func TestMoney_WithinTolerance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"equal", "100", "100", true},
		{"half cent apart", "100.005", "100", true},
		{"just above half cent", "100.006", "100", false},
		{"one cent apart", "100.01", "100", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := decimal.NewFromString(tt.a)
			b, _ := decimal.NewFromString(tt.b)

			got, err := NewMoney(a, "USD").WithinTolerance(NewMoney(b, "USD"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("WithinTolerance(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMoney_Translate(t *testing.T) {
	rate := ExchangeRate{
		From: "USD",
		To:   "EUR",
		Rate: decimal.NewFromFloat(0.9),
		AsOf: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	got, err := NewMoney(decimal.NewFromInt(100), "USD").Translate(rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Currency != "EUR" || !got.Amount.Equal(decimal.NewFromInt(90)) {
		t.Errorf("expected 90 EUR, got %s", got)
	}
}

func TestMoney_TranslateErrors(t *testing.T) {
	eur := NewMoney(decimal.NewFromInt(100), "EUR")

	_, err := eur.Translate(ExchangeRate{From: "USD", To: "EUR", Rate: decimal.NewFromInt(1)})
	if !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("wrong source currency: expected ErrCurrencyMismatch, got %v", err)
	}

	_, err = eur.Translate(ExchangeRate{From: "EUR", To: "USD", Rate: decimal.Zero})
	if !errors.Is(err, ErrInvalidRate) {
		t.Errorf("zero rate: expected ErrInvalidRate, got %v", err)
	}
}

func TestMoney_TranslateBackRoundTrips(t *testing.T) {
	rate := ExchangeRate{
		From: "EUR",
		To:   "USD",
		Rate: decimal.NewFromFloat(1.1),
		AsOf: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	translated, err := NewMoney(decimal.NewFromInt(500), "EUR").Translate(rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back, err := translated.TranslateBack(rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Currency != "EUR" || !back.Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected 500 EUR back, got %s", back)
	}
}

func TestMoney_TranslateBackErrors(t *testing.T) {
	eur := NewMoney(decimal.NewFromInt(100), "EUR")

	_, err := eur.TranslateBack(ExchangeRate{From: "EUR", To: "USD", Rate: decimal.NewFromInt(1)})
	if !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("wrong target currency: expected ErrCurrencyMismatch, got %v", err)
	}

	_, err = eur.TranslateBack(ExchangeRate{From: "USD", To: "EUR", Rate: decimal.Zero})
	if !errors.Is(err, ErrInvalidRate) {
		t.Errorf("zero rate: expected ErrInvalidRate, got %v", err)
	}
}

func TestValidateCurrency(t *testing.T) {
	if err := ValidateCurrency("USD"); err != nil {
		t.Errorf("unexpected error for USD: %v", err)
	}

	if err := ValidateCurrency("XXX"); !errors.Is(err, ErrInvalidCurrency) {
		t.Errorf("expected ErrInvalidCurrency, got %v", err)
	}
}
