package invoicing

import "errors"

var (
	ErrNilRequest          = errors.New("invoice request is required")
	ErrNilTaxPolicy        = errors.New("tax policy is required")
	ErrNilInvoiceFactory   = errors.New("invoice factory is required")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrEmptyTaxDescription = errors.New("tax description cannot be empty")
	ErrNilInvoice          = errors.New("invoice factory returned no invoice")
	ErrInvoiceNotEmpty     = errors.New("invoice factory returned an invoice with lines")

	// ErrUnsupportedProductType is returned by a TaxPolicy that has no rule for the product type.
	ErrUnsupportedProductType = errors.New("tax policy does not support product type")
)
