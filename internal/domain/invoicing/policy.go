package invoicing

import (
	"context"

	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/sharedkernel"
)

// TaxPolicy computes the tax for one line. Implementations that do I/O should honor ctx
// and report cancellation as an error.
type TaxPolicy interface {
	CalculateTax(ctx context.Context, productType catalog.ProductType, amount sharedkernel.Money) (Tax, error)
}

type TaxPolicyFunc func(ctx context.Context, productType catalog.ProductType, amount sharedkernel.Money) (Tax, error)

func (f TaxPolicyFunc) CalculateTax(ctx context.Context, productType catalog.ProductType, amount sharedkernel.Money) (Tax, error) {
	return f(ctx, productType, amount)
}
