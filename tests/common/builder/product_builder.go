//go:build unit || e2e

package builder

import (
	"time"

	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
	"sales-invoicing/internal/infra/queries"
	"sales-invoicing/internal/pkg/pgconv"
)

const (
	TestProductName = "Test Product Data"
	TestProductID   = "TEST_PRODUCT_DATA_ID"
)

type ProductBuilder struct {
	ID           published.ID
	Name         string
	Price        sharedkernel.Money
	Type         catalog.ProductType
	SnapshotDate *time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:    published.MustID(TestProductID),
		Name:  TestProductName,
		Price: sharedkernel.Zero,
		Type:  catalog.ProductTypeStandard,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithID(id published.ID) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPrice(price sharedkernel.Money) *ProductBuilder {
	b.Price = price
	return b
}

func (b *ProductBuilder) WithType(t catalog.ProductType) *ProductBuilder {
	b.Type = t
	return b
}

func (b *ProductBuilder) WithSnapshotDate(t *time.Time) *ProductBuilder {
	b.SnapshotDate = t
	return b
}

func (b *ProductBuilder) BuildDomain() (catalog.ProductData, error) {
	return catalog.NewProductData(b.ID, b.Name, b.Price, b.Type, b.SnapshotDate)
}

func (b *ProductBuilder) MustBuildDomain() catalog.ProductData {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *ProductBuilder) BuildRow() queries.ProductRow {
	return queries.ProductRow{
		ID:          b.ID.String(),
		Name:        b.Name,
		PriceAmount: pgconv.DecimalToNumeric(b.Price.Amount()),
		Currency:    b.Price.Currency().String(),
		ProductType: b.Type.String(),
	}
}
