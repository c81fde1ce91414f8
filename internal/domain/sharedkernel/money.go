package sharedkernel

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrInvalidAmount    = errors.New("invalid money amount")
)

// Currency is an ISO 4217 code.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	PLN Currency = "PLN"
)

const DefaultCurrency = EUR

func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return Currency(unit.String()), nil
}

func (c Currency) String() string {
	return string(c)
}

// MinorUnits is the number of decimals the currency is normally written with.
// Codes unknown to ISO 4217 fall back to two.
func (c Currency) MinorUnits() int32 {
	unit, err := currency.ParseISO(string(c))
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

// Money is immutable; every operation returns a new value.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// Zero is the zero amount in DefaultCurrency.
var Zero = Money{amount: decimal.Zero, currency: DefaultCurrency}

func NewMoney(amount decimal.Decimal, cur Currency) (Money, error) {
	if cur == "" {
		return Money{}, ErrInvalidCurrency
	}
	return Money{amount: amount, currency: cur}, nil
}

func NewMoneyFromInt(amount int64, cur Currency) Money {
	return Money{amount: decimal.NewFromInt(amount), currency: cur}
}

func NewMoneyFromString(amount string, cur Currency) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, err.Error())
	}
	return NewMoney(d, cur)
}

func ZeroIn(cur Currency) Money {
	return Money{amount: decimal.Zero, currency: cur}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Equal compares numerically, so 15 and 15.00 in the same currency are equal.
// go-cmp picks this method up when diffing structs that embed Money.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.formatAmount(), m.currency)
}

// formatAmount pads to the currency's minor units but never drops digits,
// so 1500 JPY stays "1500" and 3.4503 EUR keeps all four decimals.
func (m Money) formatAmount() string {
	places := m.currency.MinorUnits()
	s := m.amount.String()
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		places = max(places, int32(len(s)-dot-1))
	}
	return m.amount.StringFixed(places)
}

type moneyJSON struct {
	Amount   string   `json:"amount"`
	Currency Currency `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.formatAmount(), Currency: m.currency})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var v moneyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	cur, err := ParseCurrency(string(v.Currency))
	if err != nil {
		return err
	}
	parsed, err := NewMoneyFromString(v.Amount, cur)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
