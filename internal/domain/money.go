package domain

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a decimal amount in a single currency. Arithmetic never crosses
// currencies; the resolver filters by currency before any value reaches
// this type.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// MulQuantity scales the amount by an item quantity.
func (m Money) MulQuantity(qty int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(qty))), Currency: m.Currency}
}

// String formats the value with the currency's display rules.
func (m Money) String() string {
	cur := gomoney.GetCurrency(m.Currency)
	if cur == nil {
		return m.Amount.StringFixed(2) + " " + m.Currency
	}
	minor := m.Amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// ValidCurrency reports whether code is a known ISO-4217 currency.
func ValidCurrency(code string) bool {
	return gomoney.GetCurrency(code) != nil
}
