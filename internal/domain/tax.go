package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tax is a rate applied to line items at transaction-build time. Compound
// taxes apply to the base plus all prior tax lines in application order;
// inclusive taxes back-compute the base from a tax-inclusive gross amount.
// Every non-zero tax posts its amount to a control account.
type Tax struct {
	ID        string
	EntityID  string
	Code      string
	Name      string
	Rate      decimal.Decimal // percent
	Compound  bool
	Inclusive bool
	AccountID string
}

var oneHundred = decimal.NewFromInt(100)

// Validate checks the tax definition.
func (t *Tax) Validate() error {
	if t.Rate.IsNegative() {
		return fmt.Errorf("%w: rate %s is negative", ErrInvalidTaxRate, t.Rate)
	}
	if t.Inclusive && t.Rate.GreaterThanOrEqual(oneHundred) {
		return fmt.Errorf("%w: inclusive rate %s must be below 100%%", ErrInvalidTaxRate, t.Rate)
	}
	if !t.Rate.IsZero() && t.AccountID == "" {
		return ErrMissingTaxAccount
	}
	return nil
}

// effectiveRate is the total tax charged on a base of one, with compounding
// applied in order. Used to back out the base from an inclusive gross.
func effectiveRate(taxes []*Tax) decimal.Decimal {
	acc := decimal.Zero
	for _, tax := range taxes {
		applicable := decimal.NewFromInt(1)
		if tax.Compound {
			applicable = applicable.Add(acc)
		}
		acc = acc.Add(applicable.Mul(tax.Rate).Div(oneHundred))
	}
	return acc
}

// ExpandLineItem returns the line item followed by one synthetic tax line per
// tax, in application order. Tax lines post to the tax's control account on
// the same side as the base line, so the expansion preserves whichever side
// the caller put the base on. For inclusive taxes the base line's amount is
// rebased to the net amount extracted from the gross.
func ExpandLineItem(li LineItem, taxes []*Tax) ([]LineItem, error) {
	if len(taxes) == 0 {
		return []LineItem{li}, nil
	}

	inclusive := 0
	for _, tax := range taxes {
		if err := tax.Validate(); err != nil {
			return nil, err
		}
		if tax.Inclusive {
			inclusive++
		}
	}
	if inclusive != 0 && inclusive != len(taxes) {
		return nil, ErrMixedTaxModes
	}

	one := decimal.NewFromInt(1)
	gross := li.Amount.Mul(li.Quantity)

	base := gross
	if inclusive > 0 {
		base = gross.Div(one.Add(effectiveRate(taxes)))
		li.Amount = base
		li.Quantity = one
	}

	expanded := []LineItem{li}
	priorTax := decimal.Zero
	for _, tax := range taxes {
		applicable := base
		if tax.Compound {
			applicable = applicable.Add(priorTax)
		}
		amount := applicable.Mul(tax.Rate).Div(oneHundred)
		priorTax = priorTax.Add(amount)

		expanded = append(expanded, LineItem{
			AccountID:   tax.AccountID,
			Amount:      amount,
			Quantity:    one,
			Side:        li.Side,
			TaxOfLineID: li.ID,
			Description: fmt.Sprintf("%s on %s", tax.Code, li.Description),
		})
	}

	return expanded, nil
}
