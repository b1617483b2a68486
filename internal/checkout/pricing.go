package checkout

import (
	"math"

	"alanshor-pos/internal/domain"
)

// DefaultTaxRate is the Indonesian PPN rate applied when no rate is
// configured.
const DefaultTaxRate = 0.11

// Calculator derives monetary totals from a cart and payment input. It holds
// no state beyond the configured tax rate, so Totals is a pure function.
type Calculator struct {
	taxRate float64
}

// NewCalculator returns a Calculator with the given tax rate. Rates at or
// below zero fall back to DefaultTaxRate.
func NewCalculator(taxRate float64) Calculator {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return Calculator{taxRate: taxRate}
}

// Totals computes subtotal, tax, total and change for the given lines and
// payment input. Change is only ever positive when the cash received covers
// the total; discounts carried on lines are not applied.
func (calc Calculator) Totals(lines []domain.LineItem, payment domain.PaymentState) domain.Totals {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.UnitPrice * int64(line.Quantity)
	}
	tax := int64(math.Round(float64(subtotal) * calc.taxRate))
	total := subtotal + tax

	var change int64
	if payment.CashReceived >= total {
		change = payment.CashReceived - total
	}

	return domain.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
		Change:   change,
	}
}
