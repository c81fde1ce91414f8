//go:build unit

package invoicing_test

import (
	"context"
	"testing"

	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/invoicing"
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
	"sales-invoicing/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDGenerator struct {
	ids []published.ID
}

func (g *fixedIDGenerator) Generate() published.ID {
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id
}

func TestRequestItem(t *testing.T) {
	product := builder.NewProductBuilder().MustBuildDomain()

	t.Run("quantity must be positive", func(t *testing.T) {
		for _, q := range []int{0, -1} {
			_, err := invoicing.NewRequestItem(product, q, sharedkernel.Zero)
			require.ErrorIs(t, err, invoicing.ErrInvalidQuantity)
		}
	})

	t.Run("total cost is kept as given", func(t *testing.T) {
		cost := sharedkernel.NewMoneyFromInt(15, sharedkernel.EUR)
		item, err := invoicing.NewRequestItem(product, 4, cost)
		require.NoError(t, err)
		assert.True(t, item.TotalCost().Equal(cost))
		assert.Equal(t, 4, item.Quantity())
	})
}

func TestInvoiceRequestItemsAreCopied(t *testing.T) {
	request := builder.NewInvoiceRequestBuilder().AddStandardItem(sharedkernel.Zero).MustBuild()

	items := request.Items()
	items[0] = invoicing.RequestItem{}

	assert.Equal(t, builder.TestProductName, request.Items()[0].Product().Name())
}

func TestTax(t *testing.T) {
	_, err := invoicing.NewTax(sharedkernel.Zero, " ")
	require.ErrorIs(t, err, invoicing.ErrEmptyTaxDescription)

	tax, err := invoicing.NewTax(sharedkernel.NewMoneyFromInt(2, sharedkernel.EUR), "VAT 23%")
	require.NoError(t, err)
	assert.Equal(t, "VAT 23%", tax.Description())
}

func TestDefaultInvoiceFactory(t *testing.T) {
	ids := &fixedIDGenerator{ids: []published.ID{published.MustID("INV-1"), published.MustID("INV-2")}}
	factory := invoicing.NewInvoiceFactory(ids)

	first, err := factory.Create(builder.TestClient())
	require.NoError(t, err)
	second, err := factory.Create(builder.TestClient())
	require.NoError(t, err)

	assert.Equal(t, "INV-1", first.ID().String())
	assert.Equal(t, "INV-2", second.ID().String())
	assert.Equal(t, builder.TestClient(), first.Client())
	assert.Zero(t, first.Len())
}

func TestInvoiceTotals(t *testing.T) {
	vat := invoicing.TaxPolicyFunc(func(_ context.Context, _ catalog.ProductType, amount sharedkernel.Money) (invoicing.Tax, error) {
		return invoicing.NewTax(amount.Multiply(decimal.RequireFromString("0.23")), "VAT 23%")
	})

	t.Run("net and gross", func(t *testing.T) {
		request := builder.NewInvoiceRequestBuilder().
			AddStandardItem(sharedkernel.NewMoneyFromInt(100, sharedkernel.EUR)).
			AddStandardItem(sharedkernel.NewMoneyFromInt(50, sharedkernel.EUR)).
			MustBuild()
		invoice, err := invoicing.NewBookKeeper(invoicing.NewInvoiceFactory(published.NewUUIDGenerator())).
			Issuance(context.Background(), request, vat)
		require.NoError(t, err)

		net, err := invoice.Net(sharedkernel.EUR)
		require.NoError(t, err)
		gross, err := invoice.Gross(sharedkernel.EUR)
		require.NoError(t, err)

		assert.Equal(t, "150.00 EUR", net.String())
		assert.Equal(t, "184.50 EUR", gross.String())
	})

	t.Run("empty invoice totals zero", func(t *testing.T) {
		invoice := invoicing.NewInvoice(published.GenerateID(), builder.TestClient())
		net, err := invoice.Net(sharedkernel.PLN)
		require.NoError(t, err)
		assert.True(t, net.Equal(sharedkernel.ZeroIn(sharedkernel.PLN)))
	})

	t.Run("mixed currencies cannot be totalled", func(t *testing.T) {
		request := builder.NewInvoiceRequestBuilder().
			AddStandardItem(sharedkernel.NewMoneyFromInt(100, sharedkernel.EUR)).
			AddStandardItem(sharedkernel.NewMoneyFromInt(50, sharedkernel.USD)).
			MustBuild()
		invoice, err := invoicing.NewBookKeeper(invoicing.NewInvoiceFactory(published.NewUUIDGenerator())).
			Issuance(context.Background(), request, vat)
		require.NoError(t, err)

		_, err = invoice.Net(sharedkernel.EUR)
		require.ErrorIs(t, err, sharedkernel.ErrCurrencyMismatch)
	})
}
