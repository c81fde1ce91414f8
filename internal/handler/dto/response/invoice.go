package response

import (
	"time"

	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/invoicing"
	"sales-invoicing/internal/domain/sharedkernel"
)

type ClientResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Type         string             `json:"type"`
	Price        sharedkernel.Money `json:"price"`
	SnapshotDate *time.Time         `json:"snapshotDate,omitempty"`
}

type TaxResponse struct {
	Amount      sharedkernel.Money `json:"amount"`
	Description string             `json:"description"`
}

type InvoiceLineResponse struct {
	Product   ProductResponse    `json:"product"`
	Quantity  int                `json:"quantity"`
	TotalCost sharedkernel.Money `json:"totalCost"`
	Tax       TaxResponse        `json:"tax"`
}

type InvoiceResponse struct {
	ID     string                `json:"id"`
	Client ClientResponse        `json:"client"`
	Lines  []InvoiceLineResponse `json:"lines"`
	// Totals are omitted when lines are priced in more than one currency.
	Net   *sharedkernel.Money `json:"net,omitempty"`
	Gross *sharedkernel.Money `json:"gross,omitempty"`
}

func FromInvoice(inv *invoicing.Invoice, defaultCurrency sharedkernel.Currency) *InvoiceResponse {
	lines := inv.Lines()
	resp := &InvoiceResponse{
		ID: inv.ID().String(),
		Client: ClientResponse{
			ID:   inv.Client().ID().String(),
			Name: inv.Client().Name(),
		},
		Lines: make([]InvoiceLineResponse, len(lines)),
	}
	for i, l := range lines {
		resp.Lines[i] = fromLine(l)
	}

	cur := defaultCurrency
	if len(lines) > 0 {
		cur = lines[0].Item().TotalCost().Currency()
	}
	if net, err := inv.Net(cur); err == nil {
		resp.Net = &net
	}
	if gross, err := inv.Gross(cur); err == nil {
		resp.Gross = &gross
	}
	return resp
}

func fromLine(l invoicing.InvoiceLine) InvoiceLineResponse {
	item := l.Item()
	return InvoiceLineResponse{
		Product:   fromProduct(item.Product()),
		Quantity:  item.Quantity(),
		TotalCost: item.TotalCost(),
		Tax: TaxResponse{
			Amount:      l.Tax().Amount(),
			Description: l.Tax().Description(),
		},
	}
}

func fromProduct(p catalog.ProductData) ProductResponse {
	return ProductResponse{
		ID:           p.ProductID().String(),
		Name:         p.Name(),
		Type:         p.Type().String(),
		Price:        p.Price(),
		SnapshotDate: p.SnapshotDate(),
	}
}
