//go:build unit

package sharedkernel_test

import (
	"encoding/json"
	"testing"

	"sales-invoicing/internal/domain/sharedkernel"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("zero is in the default currency", func(t *testing.T) {
		assert.True(t, sharedkernel.Zero.IsZero())
		assert.Equal(t, sharedkernel.DefaultCurrency, sharedkernel.Zero.Currency())
	})

	t.Run("equality is by value", func(t *testing.T) {
		a := sharedkernel.NewMoneyFromInt(15, sharedkernel.EUR)
		b, err := sharedkernel.NewMoneyFromString("15.00", sharedkernel.EUR)
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
		assert.Empty(t, cmp.Diff(a, b))
		assert.False(t, a.Equal(sharedkernel.NewMoneyFromInt(15, sharedkernel.USD)))
		assert.False(t, a.Equal(sharedkernel.NewMoneyFromInt(16, sharedkernel.EUR)))
	})

	t.Run("add in the same currency", func(t *testing.T) {
		sum, err := sharedkernel.NewMoneyFromInt(10, sharedkernel.EUR).Add(sharedkernel.NewMoneyFromInt(5, sharedkernel.EUR))
		require.NoError(t, err)
		assert.True(t, sum.Equal(sharedkernel.NewMoneyFromInt(15, sharedkernel.EUR)))
	})

	t.Run("add across currencies fails", func(t *testing.T) {
		_, err := sharedkernel.NewMoneyFromInt(10, sharedkernel.EUR).Add(sharedkernel.NewMoneyFromInt(5, sharedkernel.USD))
		require.ErrorIs(t, err, sharedkernel.ErrCurrencyMismatch)
	})

	t.Run("multiply keeps currency", func(t *testing.T) {
		m := sharedkernel.NewMoneyFromInt(100, sharedkernel.PLN).Multiply(decimal.RequireFromString("0.23"))
		assert.Equal(t, sharedkernel.PLN, m.Currency())
		assert.Equal(t, "23.00 PLN", m.String())
	})

	t.Run("empty currency rejected", func(t *testing.T) {
		_, err := sharedkernel.NewMoney(decimal.NewFromInt(1), "")
		require.ErrorIs(t, err, sharedkernel.ErrInvalidCurrency)
	})

	t.Run("invalid amount string rejected", func(t *testing.T) {
		_, err := sharedkernel.NewMoneyFromString("abc", sharedkernel.EUR)
		require.ErrorIs(t, err, sharedkernel.ErrInvalidAmount)
	})
}

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  sharedkernel.Currency
		errIs error
	}{
		{name: "upper case", in: "EUR", want: sharedkernel.EUR},
		{name: "lower case with spaces", in: " usd ", want: sharedkernel.USD},
		{name: "unknown code", in: "ABC", errIs: sharedkernel.ErrInvalidCurrency},
		{name: "empty", in: "", errIs: sharedkernel.ErrInvalidCurrency},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := sharedkernel.ParseCurrency(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestMoneyJSON(t *testing.T) {
	t.Run("marshals with two decimals", func(t *testing.T) {
		b, err := json.Marshal(sharedkernel.NewMoneyFromInt(15, sharedkernel.EUR))
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":"15.00","currency":"EUR"}`, string(b))
	})

	t.Run("keeps every decimal the amount carries", func(t *testing.T) {
		m, err := sharedkernel.NewMoneyFromString("3.4503", sharedkernel.EUR)
		require.NoError(t, err)

		b, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":"3.4503","currency":"EUR"}`, string(b))

		var back sharedkernel.Money
		require.NoError(t, json.Unmarshal(b, &back))
		assert.True(t, m.Equal(back), "round trip changed %s into %s", m, back)
	})

	t.Run("uses the currency's minor units", func(t *testing.T) {
		cases := []struct {
			money sharedkernel.Money
			want  string
		}{
			{money: sharedkernel.NewMoneyFromInt(1500, "JPY"), want: `{"amount":"1500","currency":"JPY"}`},
			{money: sharedkernel.NewMoneyFromInt(7, "KWD"), want: `{"amount":"7.000","currency":"KWD"}`},
			{money: sharedkernel.NewMoneyFromInt(7, sharedkernel.PLN), want: `{"amount":"7.00","currency":"PLN"}`},
		}
		for _, c := range cases {
			b, err := json.Marshal(c.money)
			require.NoError(t, err)
			assert.JSONEq(t, c.want, string(b))
		}
		assert.Equal(t, "1500 JPY", sharedkernel.NewMoneyFromInt(1500, "JPY").String())
	})

	t.Run("unmarshals and validates currency", func(t *testing.T) {
		var m sharedkernel.Money
		require.NoError(t, json.Unmarshal([]byte(`{"amount":"12.5","currency":"pln"}`), &m))
		assert.True(t, m.Equal(sharedkernel.NewMoneyFromInt(125, sharedkernel.PLN).Multiply(decimal.RequireFromString("0.1"))))

		err := json.Unmarshal([]byte(`{"amount":"1","currency":"???"}`), &m)
		require.ErrorIs(t, err, sharedkernel.ErrInvalidCurrency)
	})
}
