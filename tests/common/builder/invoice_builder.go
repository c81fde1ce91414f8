//go:build unit || e2e

package builder

import (
	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/invoicing"
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
	reqdto "sales-invoicing/internal/handler/dto/request"
	"sales-invoicing/internal/usecase/commands"
)

const (
	TestClientName     = "Owsiak"
	TestClientID       = "TEST_CLIENT_ID"
	TestTaxDescription = "Tax Description"
)

type lineSpec struct {
	product   catalog.ProductData
	quantity  int
	totalCost sharedkernel.Money
}

type InvoiceRequestBuilder struct {
	Client published.ClientData
	lines  []lineSpec
}

func NewInvoiceRequestBuilder() *InvoiceRequestBuilder {
	return &InvoiceRequestBuilder{Client: TestClient()}
}

func TestClient() published.ClientData {
	c, err := published.NewClientData(published.MustID(TestClientID), TestClientName)
	if err != nil {
		panic(err)
	}
	return c
}

func ZeroTax() invoicing.Tax {
	tax, err := invoicing.NewTax(sharedkernel.Zero, TestTaxDescription)
	if err != nil {
		panic(err)
	}
	return tax
}

func (b *InvoiceRequestBuilder) WithClient(c published.ClientData) *InvoiceRequestBuilder {
	b.Client = c
	return b
}

func (b *InvoiceRequestBuilder) AddItem(product catalog.ProductData, quantity int, totalCost sharedkernel.Money) *InvoiceRequestBuilder {
	b.lines = append(b.lines, lineSpec{product: product, quantity: quantity, totalCost: totalCost})
	return b
}

// AddStandardItem adds a STANDARD product line with quantity 1.
func (b *InvoiceRequestBuilder) AddStandardItem(totalCost sharedkernel.Money) *InvoiceRequestBuilder {
	return b.AddItem(NewProductBuilder().MustBuildDomain(), 1, totalCost)
}

func (b *InvoiceRequestBuilder) Build() (*invoicing.InvoiceRequest, error) {
	req := invoicing.NewInvoiceRequest(b.Client)
	for _, l := range b.lines {
		item, err := invoicing.NewRequestItem(l.product, l.quantity, l.totalCost)
		if err != nil {
			return nil, err
		}
		req.Add(item)
	}
	return req, nil
}

func (b *InvoiceRequestBuilder) MustBuild() *invoicing.InvoiceRequest {
	req, err := b.Build()
	if err != nil {
		panic(err)
	}
	return req
}

func (b *InvoiceRequestBuilder) BuildIssueRequestDTO() reqdto.IssueInvoiceRequest {
	items := make([]reqdto.IssueInvoiceItem, len(b.lines))
	for i, l := range b.lines {
		items[i] = reqdto.IssueInvoiceItem{
			ProductID: l.product.ProductID().String(),
			Quantity:  l.quantity,
			TotalCost: reqdto.MoneyRequest{
				Amount:   l.totalCost.Amount().StringFixed(2),
				Currency: l.totalCost.Currency().String(),
			},
		}
	}
	return reqdto.IssueInvoiceRequest{
		ClientID: b.Client.ID().String(),
		Items:    items,
	}
}

func (b *InvoiceRequestBuilder) BuildParams() commands.IssueInvoiceParams {
	items := make([]commands.IssueInvoiceItem, len(b.lines))
	for i, l := range b.lines {
		items[i] = commands.IssueInvoiceItem{
			ProductID: l.product.ProductID(),
			Quantity:  l.quantity,
			TotalCost: l.totalCost,
		}
	}
	return commands.IssueInvoiceParams{
		ClientID: b.Client.ID(),
		Items:    items,
	}
}
