package readstore

import (
	"context"

	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
	"sales-invoicing/internal/infra"
	"sales-invoicing/internal/infra/queries"
	"sales-invoicing/internal/pkg/clock"
	"sales-invoicing/internal/pkg/pgconv"
)

type ProductReadQueries interface {
	GetProductByID(ctx context.Context, db queries.DBTX, id string) (queries.ProductRow, error)
}

// ProductReadStore hands out catalog snapshots stamped with the time they were taken.
type ProductReadStore struct {
	queries ProductReadQueries
	db      queries.DBTX
	clock   clock.Clock
}

func NewProductReadStore(queries ProductReadQueries, db queries.DBTX, clock clock.Clock) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
		clock:   clock,
	}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id published.ID) (catalog.ProductData, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return catalog.ProductData{}, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return catalog.ProductData{}, infra.WrapRepoErr("failed to find product by ID", err)
	}

	return r.toProductData(row)
}

func (r *ProductReadStore) toProductData(row queries.ProductRow) (catalog.ProductData, error) {
	id, err := published.NewID(row.ID)
	if err != nil {
		return catalog.ProductData{}, infra.WrapRepoErr("stored product has no id", err, infra.KindCorruptData)
	}

	amount, err := pgconv.DecimalFromNumeric(row.PriceAmount)
	if err != nil {
		return catalog.ProductData{}, infra.WrapRepoErr("stored product price is unreadable", err, infra.KindCorruptData)
	}
	cur, err := sharedkernel.ParseCurrency(row.Currency)
	if err != nil {
		return catalog.ProductData{}, infra.WrapRepoErr("stored product currency is invalid", err, infra.KindCorruptData)
	}
	price, err := sharedkernel.NewMoney(amount, cur)
	if err != nil {
		return catalog.ProductData{}, infra.WrapRepoErr("stored product price is invalid", err, infra.KindCorruptData)
	}

	productType, err := catalog.ParseProductType(row.ProductType)
	if err != nil {
		return catalog.ProductData{}, infra.WrapRepoErr("stored product type is invalid", err, infra.KindCorruptData)
	}

	takenAt := r.clock.Now()
	product, err := catalog.NewProductData(id, row.Name, price, productType, &takenAt)
	if err != nil {
		return catalog.ProductData{}, infra.WrapRepoErr("stored product is invalid", err, infra.KindCorruptData)
	}
	return product, nil
}
