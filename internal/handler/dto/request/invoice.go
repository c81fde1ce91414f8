package request

import (
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
	"sales-invoicing/internal/usecase/commands"
)

type MoneyRequest struct {
	Amount   string `json:"amount" binding:"required,decimal_amount"`
	Currency string `json:"currency,omitempty" binding:"omitempty,iso4217"`
}

type IssueInvoiceItem struct {
	ProductID string       `json:"productId" binding:"required,max=64"`
	Quantity  int          `json:"quantity" binding:"required,min=1"`
	TotalCost MoneyRequest `json:"totalCost"`
}

// IssueInvoiceRequest may carry no items; that issues an empty invoice.
type IssueInvoiceRequest struct {
	ClientID string             `json:"clientId" binding:"required,max=64"`
	Items    []IssueInvoiceItem `json:"items" binding:"max=500,dive"`
}

// ToParams fills a missing currency with defaultCurrency.
func (r IssueInvoiceRequest) ToParams(defaultCurrency sharedkernel.Currency) (commands.IssueInvoiceParams, error) {
	clientID, err := published.NewID(r.ClientID)
	if err != nil {
		return commands.IssueInvoiceParams{}, err
	}

	items := make([]commands.IssueInvoiceItem, len(r.Items))
	for i, it := range r.Items {
		productID, err := published.NewID(it.ProductID)
		if err != nil {
			return commands.IssueInvoiceParams{}, err
		}
		cost, err := it.TotalCost.toMoney(defaultCurrency)
		if err != nil {
			return commands.IssueInvoiceParams{}, err
		}
		items[i] = commands.IssueInvoiceItem{
			ProductID: productID,
			Quantity:  it.Quantity,
			TotalCost: cost,
		}
	}

	return commands.IssueInvoiceParams{
		ClientID: clientID,
		Items:    items,
	}, nil
}

func (m MoneyRequest) toMoney(defaultCurrency sharedkernel.Currency) (sharedkernel.Money, error) {
	cur := defaultCurrency
	if m.Currency != "" {
		parsed, err := sharedkernel.ParseCurrency(m.Currency)
		if err != nil {
			return sharedkernel.Money{}, err
		}
		cur = parsed
	}
	return sharedkernel.NewMoneyFromString(m.Amount, cur)
}
