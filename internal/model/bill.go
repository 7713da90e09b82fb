package model

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Bill is a named amount. Name is the bill's identity and never changes once
// the bill is stored; only Amount is updated.
type Bill struct {
	Name   string
	Amount float64 // any value, including zero and negative
}

// String renders the bill as a single display line: "rent: 1200.00".
func (b Bill) String() string {
	return b.Name + ": " + FormatAmount(b.Amount)
}

// AmountDecimal converts a float amount to its shortest exact decimal form.
// Reports false for NaN and infinities, which decimal cannot represent.
func AmountDecimal(amount float64) (decimal.Decimal, bool) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(amount), true
}

// FormatAmount renders an amount with two decimal places, or with as many as
// needed when the value carries more precision than cents.
// 1200 -> "1200.00", 150.5 -> "150.50", 0.125 -> "0.125"
func FormatAmount(amount float64) string {
	d, ok := AmountDecimal(amount)
	if !ok {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return FormatDecimal(d)
}

// FormatDecimal applies the FormatAmount rules to a decimal value.
func FormatDecimal(d decimal.Decimal) string {
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}
