package invoicing

import "context"

// BookKeeper turns an InvoiceRequest into an Invoice. It keeps no state between calls
// and performs no tax arithmetic of its own.
type BookKeeper struct {
	factory InvoiceFactory
}

func NewBookKeeper(factory InvoiceFactory) *BookKeeper {
	return &BookKeeper{factory: factory}
}

// Issuance asks the factory for an empty invoice and adds one line per request item, in
// request order, carrying exactly the Tax the policy returned for that item. Collaborator
// errors are returned as-is and no invoice is returned with them.
func (b *BookKeeper) Issuance(ctx context.Context, request *InvoiceRequest, taxPolicy TaxPolicy) (*Invoice, error) {
	if request == nil {
		return nil, ErrNilRequest
	}
	if taxPolicy == nil {
		return nil, ErrNilTaxPolicy
	}
	if b.factory == nil {
		return nil, ErrNilInvoiceFactory
	}

	invoice, err := b.factory.Create(request.Client())
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrNilInvoice
	}
	if invoice.Len() != 0 {
		return nil, ErrInvoiceNotEmpty
	}

	for _, item := range request.items {
		tax, err := taxPolicy.CalculateTax(ctx, item.Product().Type(), item.TotalCost())
		if err != nil {
			return nil, err
		}
		invoice.addItem(item, tax)
	}

	return invoice, nil
}
