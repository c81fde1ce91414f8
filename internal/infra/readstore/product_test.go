//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
	"sales-invoicing/internal/infra"
	"sales-invoicing/internal/infra/queries"
	"sales-invoicing/internal/pkg/clock"
	"sales-invoicing/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductReadQueries struct {
	mock.Mock
}

func (m *MockProductReadQueries) GetProductByID(ctx context.Context, db queries.DBTX, id string) (queries.ProductRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(queries.ProductRow), args.Error(1)
}

func TestProductReadStoreFindByID(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	productID := published.MustID(builder.TestProductID)
	price, err := sharedkernel.NewMoney(decimal.RequireFromString("12.99"), sharedkernel.PLN)
	require.NoError(t, err)

	food := builder.NewProductBuilder().WithType(catalog.ProductTypeFood).WithPrice(price)

	tests := []struct {
		name      string
		row       queries.ProductRow
		mockError error
		wantKind  infra.RepositoryErrorKind
		wantError bool
	}{
		{
			name: "success",
			row:  food.BuildRow(),
		},
		{
			name:      "product not found",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
			wantError: true,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
			wantError: true,
		},
		{
			name: "unknown product type",
			row: func() queries.ProductRow {
				r := food.BuildRow()
				r.ProductType = "LUXURY"
				return r
			}(),
			wantKind:  infra.KindCorruptData,
			wantError: true,
		},
		{
			name: "unknown currency",
			row: func() queries.ProductRow {
				r := food.BuildRow()
				r.Currency = "XYZ"
				return r
			}(),
			wantKind:  infra.KindCorruptData,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockProductReadQueries)
			q.On("GetProductByID", mock.Anything, mock.Anything, builder.TestProductID).Return(tt.row, tt.mockError)

			store := NewProductReadStore(q, nil, clock.NewMockClock(now))
			got, err := store.FindByID(context.Background(), productID)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "kind %s, got %v", tt.wantKind, err)
				q.AssertExpectations(t)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, productID, got.ProductID())
			assert.Equal(t, builder.TestProductName, got.Name())
			assert.Equal(t, catalog.ProductTypeFood, got.Type())
			assert.True(t, got.Price().Equal(price), "price %s", got.Price())
			require.NotNil(t, got.SnapshotDate())
			assert.True(t, now.Equal(*got.SnapshotDate()))
			q.AssertExpectations(t)
		})
	}
}
