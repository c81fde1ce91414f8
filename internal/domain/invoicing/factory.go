package invoicing

import "sales-invoicing/internal/domain/published"

type InvoiceFactory interface {
	Create(client published.ClientData) (*Invoice, error)
}

type DefaultInvoiceFactory struct {
	IDGenerator published.IDGenerator
}

func NewInvoiceFactory(idGenerator published.IDGenerator) *DefaultInvoiceFactory {
	return &DefaultInvoiceFactory{IDGenerator: idGenerator}
}

func (f *DefaultInvoiceFactory) Create(client published.ClientData) (*Invoice, error) {
	return NewInvoice(f.IDGenerator.Generate(), client), nil
}
