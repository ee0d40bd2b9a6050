package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Minor unit exponents for supported ISO 4217 currencies.
// Currencies not listed here are rejected rather than defaulted.
var currencyExponents = map[string]int32{
	"USD": 2, "EUR": 2, "GBP": 2, "JPY": 0,
	"CNY": 2, "AUD": 2, "CAD": 2, "CHF": 2,
	"SEK": 2, "NZD": 2, "KRW": 0, "SGD": 2,
	"NOK": 2, "MXN": 2, "INR": 2, "BRL": 2,
	"ZAR": 2, "TRY": 2, "HKD": 2, "KES": 2,
	"BHD": 3, "KWD": 3, "OMR": 3,
}

// ValidateCurrency checks that currency is a supported ISO 4217 code.
func ValidateCurrency(currency string) error {
	if _, ok := currencyExponents[strings.ToUpper(strings.TrimSpace(currency))]; !ok {
		return fmt.Errorf("%w: %s", ErrInvalidCurrency, currency)
	}
	return nil
}

// CurrencyExponent returns the number of minor unit digits for a currency.
func CurrencyExponent(currency string) int32 {
	if exp, ok := currencyExponents[currency]; ok {
		return exp
	}
	return 2
}

// Money is an exact decimal amount in a single currency. Arithmetic between
// differing currencies fails with ErrCurrencyMismatch; translation is always
// explicit via an ExchangeRate.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney creates a Money value.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub returns m - other.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Mul returns m scaled by factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

// Neg returns m with the sign flipped.
func (m Money) Neg() Money {
	return Money{Amount: m.Amount.Neg(), Currency: m.Currency}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Round rounds the amount to the currency's minor unit, half away from zero.
func (m Money) Round() Money {
	return Money{Amount: m.Amount.Round(CurrencyExponent(m.Currency)), Currency: m.Currency}
}

// Tolerance is the rounding tolerance for comparisons: half of the smallest
// currency unit (0.005 for two-decimal currencies).
func Tolerance(currency string) decimal.Decimal {
	unit := decimal.New(1, -CurrencyExponent(currency))
	return unit.Div(decimal.NewFromInt(2))
}

// WithinTolerance reports whether m and other differ by no more than half of
// the smallest unit of their shared currency.
func (m Money) WithinTolerance(other Money) (bool, error) {
	if m.Currency != other.Currency {
		return false, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	diff := m.Amount.Sub(other.Amount).Abs()
	return diff.LessThanOrEqual(Tolerance(m.Currency)), nil
}

func (m Money) String() string {
	return m.Amount.StringFixed(CurrencyExponent(m.Currency)) + " " + m.Currency
}

// ExchangeRate is a conversion rate captured at a point in time. Rates are
// taken as of the transaction date and carried with the value that used them;
// they are never re-read at posting time.
type ExchangeRate struct {
	From string
	To   string
	Rate decimal.Decimal
	AsOf time.Time
}

// Translate converts m into the rate's target currency.
func (m Money) Translate(rate ExchangeRate) (Money, error) {
	if rate.From != m.Currency {
		return Money{}, fmt.Errorf("%w: rate is %s->%s, amount is %s", ErrCurrencyMismatch, rate.From, rate.To, m.Currency)
	}
	if !rate.Rate.IsPositive() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidRate, rate.Rate)
	}
	return Money{Amount: m.Amount.Mul(rate.Rate), Currency: rate.To}, nil
}

// TranslateBack converts m, denominated in the rate's target currency, back
// into the source currency by division. An amount produced by Translate with
// the same rate round-trips exactly.
func (m Money) TranslateBack(rate ExchangeRate) (Money, error) {
	if rate.To != m.Currency {
		return Money{}, fmt.Errorf("%w: rate is %s->%s, amount is %s", ErrCurrencyMismatch, rate.From, rate.To, m.Currency)
	}
	if !rate.Rate.IsPositive() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidRate, rate.Rate)
	}
	return Money{Amount: m.Amount.Div(rate.Rate), Currency: rate.From}, nil
}
