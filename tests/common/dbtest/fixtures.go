//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference rows present after every ResetDB.
const (
	ReferenceClientID   = "CLIENT-ACME"
	ReferenceClientName = "Acme Sp. z o.o."

	ReferenceStandardProductID = "PRD-STANDARD"
	ReferenceFoodProductID     = "PRD-FOOD"
	ReferenceDrugProductID     = "PRD-DRUG"
)

func CreateTestClient(t *testing.T, db DBLike, id, name string) string {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO clients (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name",
		id, name)
	require.NoError(t, err)

	return id
}

// CreateTestProduct inserts or replaces a catalog row. price is a decimal string such as "12.50".
func CreateTestProduct(t *testing.T, db DBLike, id, name, price, currency, productType string) string {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO products (id, name, price_amount, currency, product_type)
		VALUES ($1, $2, $3::numeric, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    price_amount = EXCLUDED.price_amount,
		    currency = EXCLUDED.currency,
		    product_type = EXCLUDED.product_type,
		    updated_at = now()`,
		id, name, price, currency, productType)
	require.NoError(t, err)

	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO clients (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING;
	`, ReferenceClientID, ReferenceClientName)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO products (id, name, price_amount, currency, product_type) VALUES
		    ($1, 'Office chair', 100.00, 'EUR', 'STANDARD'),
		    ($2, 'Coffee beans 1kg', 25.00, 'EUR', 'FOOD'),
		    ($3, 'Ibuprofen 200mg', 8.50, 'EUR', 'DRUG')
		ON CONFLICT (id) DO NOTHING;
	`, ReferenceStandardProductID, ReferenceFoodProductID, ReferenceDrugProductID)
	return err
}

// catalogTables lists every table the schema creates.
var catalogTables = []string{"products", "clients"}

// ResetDB empties the catalog and puts the reference rows back.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(catalogTables, ", ")+" CASCADE"); err != nil {
		return fmt.Errorf("truncate catalog: %w", err)
	}
	return SeedReferenceData(pool)
}
