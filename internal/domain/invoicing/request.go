package invoicing

import (
	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
)

// RequestItem is one requested line. totalCost is taken as given and is not
// recomputed from the unit price.
type RequestItem struct {
	product   catalog.ProductData
	quantity  int
	totalCost sharedkernel.Money
}

func NewRequestItem(product catalog.ProductData, quantity int, totalCost sharedkernel.Money) (RequestItem, error) {
	if quantity < 1 {
		return RequestItem{}, ErrInvalidQuantity
	}
	return RequestItem{
		product:   product,
		quantity:  quantity,
		totalCost: totalCost,
	}, nil
}

func (r RequestItem) Product() catalog.ProductData  { return r.product }
func (r RequestItem) Quantity() int                 { return r.quantity }
func (r RequestItem) TotalCost() sharedkernel.Money { return r.totalCost }

type InvoiceRequest struct {
	client published.ClientData
	items  []RequestItem
}

func NewInvoiceRequest(client published.ClientData) *InvoiceRequest {
	return &InvoiceRequest{client: client}
}

func (r *InvoiceRequest) Add(item RequestItem) {
	r.items = append(r.items, item)
}

func (r *InvoiceRequest) Client() published.ClientData { return r.client }

// Items returns the items in insertion order. The slice is a copy.
func (r *InvoiceRequest) Items() []RequestItem {
	out := make([]RequestItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *InvoiceRequest) Len() int { return len(r.items) }
