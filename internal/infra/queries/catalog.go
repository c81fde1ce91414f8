package queries

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type ClientRow struct {
	ID   string
	Name string
}

const getClientByID = `-- name: GetClientByID :one
SELECT id, name
FROM clients
WHERE id = $1
`

func (q *Queries) GetClientByID(ctx context.Context, db DBTX, id string) (ClientRow, error) {
	row := db.QueryRow(ctx, getClientByID, id)
	var i ClientRow
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

type ProductRow struct {
	ID          string
	Name        string
	PriceAmount pgtype.Numeric
	Currency    string
	ProductType string
}

const getProductByID = `-- name: GetProductByID :one
SELECT id, name, price_amount, currency, product_type
FROM products
WHERE id = $1
`

func (q *Queries) GetProductByID(ctx context.Context, db DBTX, id string) (ProductRow, error) {
	row := db.QueryRow(ctx, getProductByID, id)
	var i ProductRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.PriceAmount,
		&i.Currency,
		&i.ProductType,
	)
	return i, err
}
