//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/invoicing"
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
	"sales-invoicing/internal/infra"
	"sales-invoicing/internal/pkg/errs"
	"sales-invoicing/internal/usecase/commands"
	"sales-invoicing/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClientStore struct{ mock.Mock }

func (m *mockClientStore) FindByID(ctx context.Context, id published.ID) (published.ClientData, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(published.ClientData), args.Error(1)
}

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) FindByID(ctx context.Context, id published.ID) (catalog.ProductData, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.ProductData), args.Error(1)
}

// fakeSnapshot hands out the mock stores and records whether a snapshot is open.
type fakeSnapshot struct {
	clients  *mockClientStore
	products *mockProductStore
	beginErr error
	open     bool
	calls    int
}

func (s *fakeSnapshot) WithinSnapshot(ctx context.Context, fn func(ctx context.Context, reads commands.CatalogReads) error) error {
	s.calls++
	if s.beginErr != nil {
		return s.beginErr
	}
	s.open = true
	defer func() { s.open = false }()
	return fn(ctx, s)
}

func (s *fakeSnapshot) Clients() commands.ClientReadStore   { return s.clients }
func (s *fakeSnapshot) Products() commands.ProductReadStore { return s.products }

type recordingObserver struct {
	lines []int
	errs  []error
}

func (o *recordingObserver) ObserveIssuance(lines int, err error) {
	o.lines = append(o.lines, lines)
	o.errs = append(o.errs, err)
}

type fixture struct {
	clients       *mockClientStore
	products      *mockProductStore
	snapshot      *fakeSnapshot
	observer      *recordingObserver
	taxCalls      []catalog.ProductType
	taxErr        error
	taxInSnapshot bool
	uc            commands.InvoiceCommands
}

func newFixture() *fixture {
	f := &fixture{
		clients:  new(mockClientStore),
		products: new(mockProductStore),
		observer: &recordingObserver{},
	}
	f.snapshot = &fakeSnapshot{clients: f.clients, products: f.products}
	policy := invoicing.TaxPolicyFunc(func(_ context.Context, pt catalog.ProductType, _ sharedkernel.Money) (invoicing.Tax, error) {
		f.taxCalls = append(f.taxCalls, pt)
		if f.snapshot.open {
			f.taxInSnapshot = true
		}
		if f.taxErr != nil {
			return invoicing.Tax{}, f.taxErr
		}
		return builder.ZeroTax(), nil
	})
	keeper := invoicing.NewBookKeeper(invoicing.NewInvoiceFactory(published.NewUUIDGenerator()))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.uc = commands.NewInvoiceCommands(f.snapshot, keeper, policy, f.observer, logger)
	return f
}

func TestIssueInvoice(t *testing.T) {
	ctx := context.Background()
	bread := builder.NewProductBuilder().WithID(published.MustID("BREAD")).WithName("Bread").WithType(catalog.ProductTypeFood)
	pills := builder.NewProductBuilder().WithID(published.MustID("PILLS")).WithName("Pills").WithType(catalog.ProductTypeDrug)

	t.Run("loads snapshots and issues lines in request order", func(t *testing.T) {
		f := newFixture()
		params := builder.NewInvoiceRequestBuilder().
			AddItem(bread.MustBuildDomain(), 2, sharedkernel.NewMoneyFromInt(6, sharedkernel.EUR)).
			AddItem(pills.MustBuildDomain(), 1, sharedkernel.NewMoneyFromInt(20, sharedkernel.EUR)).
			AddItem(bread.MustBuildDomain(), 1, sharedkernel.NewMoneyFromInt(3, sharedkernel.EUR)).
			BuildParams()

		f.clients.On("FindByID", mock.Anything, params.ClientID).Return(builder.TestClient(), nil).Once()
		f.products.On("FindByID", mock.Anything, published.MustID("BREAD")).Return(bread.MustBuildDomain(), nil).Once()
		f.products.On("FindByID", mock.Anything, published.MustID("PILLS")).Return(pills.MustBuildDomain(), nil).Once()

		invoice, err := f.uc.IssueInvoice(ctx, params)
		require.NoError(t, err)

		require.Equal(t, 3, invoice.Len())
		lines := invoice.Lines()
		assert.Equal(t, "Bread", lines[0].Item().Product().Name())
		assert.Equal(t, "Pills", lines[1].Item().Product().Name())
		assert.Equal(t, 2, lines[0].Item().Quantity())
		assert.True(t, lines[2].Item().TotalCost().Equal(sharedkernel.NewMoneyFromInt(3, sharedkernel.EUR)))
		assert.Equal(t, []catalog.ProductType{catalog.ProductTypeFood, catalog.ProductTypeDrug, catalog.ProductTypeFood}, f.taxCalls)
		assert.Equal(t, builder.TestClient(), invoice.Client())
		assert.Equal(t, []int{3}, f.observer.lines)
		assert.Equal(t, 1, f.snapshot.calls, "all lookups share one snapshot")
		assert.False(t, f.taxInSnapshot, "tax is calculated after the snapshot is released")

		f.clients.AssertExpectations(t)
		f.products.AssertExpectations(t)
	})

	t.Run("unknown client", func(t *testing.T) {
		f := newFixture()
		params := builder.NewInvoiceRequestBuilder().AddStandardItem(sharedkernel.Zero).BuildParams()
		f.clients.On("FindByID", mock.Anything, params.ClientID).
			Return(published.ClientData{}, infra.WrapRepoErr("client not found", errors.New("no rows"), infra.KindNotFound))

		invoice, err := f.uc.IssueInvoice(ctx, params)
		assert.Nil(t, invoice)
		assert.True(t, errs.Is(err, commands.ErrClientNotFound), "got %v", err)
		f.products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		require.Len(t, f.observer.errs, 1)
		assert.Error(t, f.observer.errs[0])
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture()
		params := builder.NewInvoiceRequestBuilder().AddStandardItem(sharedkernel.Zero).BuildParams()
		f.clients.On("FindByID", mock.Anything, params.ClientID).Return(builder.TestClient(), nil)
		f.products.On("FindByID", mock.Anything, mock.Anything).
			Return(catalog.ProductData{}, infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound))

		_, err := f.uc.IssueInvoice(ctx, params)
		assert.True(t, errs.Is(err, commands.ErrProductNotFound), "got %v", err)
		assert.Empty(t, f.taxCalls)
	})

	t.Run("database failure", func(t *testing.T) {
		f := newFixture()
		params := builder.NewInvoiceRequestBuilder().BuildParams()
		f.clients.On("FindByID", mock.Anything, params.ClientID).
			Return(published.ClientData{}, infra.WrapRepoErr("failed to find client by ID", assert.AnError))

		_, err := f.uc.IssueInvoice(ctx, params)
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), "got %v", err)
		assert.False(t, errs.Is(err, commands.ErrClientNotFound))
	})

	t.Run("invalid quantity", func(t *testing.T) {
		f := newFixture()
		params := builder.NewInvoiceRequestBuilder().AddStandardItem(sharedkernel.Zero).BuildParams()
		params.Items[0].Quantity = 0
		f.clients.On("FindByID", mock.Anything, params.ClientID).Return(builder.TestClient(), nil)
		f.products.On("FindByID", mock.Anything, mock.Anything).Return(builder.NewProductBuilder().MustBuildDomain(), nil)

		_, err := f.uc.IssueInvoice(ctx, params)
		assert.True(t, errs.Is(err, commands.ErrInvalidRequest), "got %v", err)
		assert.ErrorIs(t, err, invoicing.ErrInvalidQuantity)
	})

	t.Run("missing client id", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.IssueInvoice(ctx, commands.IssueInvoiceParams{})
		assert.True(t, errs.Is(err, commands.ErrInvalidRequest), "got %v", err)
		f.clients.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		assert.Zero(t, f.snapshot.calls)
	})

	t.Run("snapshot cannot be opened", func(t *testing.T) {
		f := newFixture()
		f.snapshot.beginErr = infra.WrapRepoErr("failed to begin snapshot transaction", assert.AnError)
		params := builder.NewInvoiceRequestBuilder().AddStandardItem(sharedkernel.Zero).BuildParams()

		_, err := f.uc.IssueInvoice(ctx, params)
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), "got %v", err)
		assert.Empty(t, f.taxCalls)
		require.Len(t, f.observer.errs, 1)
	})

	t.Run("unsupported product type", func(t *testing.T) {
		f := newFixture()
		f.taxErr = invoicing.ErrUnsupportedProductType
		params := builder.NewInvoiceRequestBuilder().AddStandardItem(sharedkernel.Zero).BuildParams()
		f.clients.On("FindByID", mock.Anything, params.ClientID).Return(builder.TestClient(), nil)
		f.products.On("FindByID", mock.Anything, mock.Anything).Return(builder.NewProductBuilder().MustBuildDomain(), nil)

		_, err := f.uc.IssueInvoice(ctx, params)
		assert.True(t, errs.Is(err, commands.ErrUnsupportedProductType), "got %v", err)
		assert.ErrorIs(t, err, invoicing.ErrUnsupportedProductType)
	})

	t.Run("unsupported product type marked by the tax client", func(t *testing.T) {
		f := newFixture()
		f.taxErr = errs.Mark(errs.New("tax service rejected product type DRUG"), invoicing.ErrUnsupportedProductType)
		params := builder.NewInvoiceRequestBuilder().AddStandardItem(sharedkernel.Zero).BuildParams()
		f.clients.On("FindByID", mock.Anything, params.ClientID).Return(builder.TestClient(), nil)
		f.products.On("FindByID", mock.Anything, mock.Anything).Return(builder.NewProductBuilder().MustBuildDomain(), nil)

		_, err := f.uc.IssueInvoice(ctx, params)
		assert.True(t, errs.Is(err, commands.ErrUnsupportedProductType), "got %v", err)
		assert.False(t, errs.Is(err, commands.ErrTaxCalculationFailed))
	})

	t.Run("tax policy failure", func(t *testing.T) {
		f := newFixture()
		f.taxErr = errors.New("tax service down")
		params := builder.NewInvoiceRequestBuilder().AddStandardItem(sharedkernel.Zero).BuildParams()
		f.clients.On("FindByID", mock.Anything, params.ClientID).Return(builder.TestClient(), nil)
		f.products.On("FindByID", mock.Anything, mock.Anything).Return(builder.NewProductBuilder().MustBuildDomain(), nil)

		invoice, err := f.uc.IssueInvoice(ctx, params)
		assert.Nil(t, invoice)
		assert.True(t, errs.Is(err, commands.ErrTaxCalculationFailed), "got %v", err)
		assert.ErrorIs(t, err, f.taxErr)
	})

	t.Run("empty item list issues an empty invoice", func(t *testing.T) {
		f := newFixture()
		params := builder.NewInvoiceRequestBuilder().BuildParams()
		f.clients.On("FindByID", mock.Anything, params.ClientID).Return(builder.TestClient(), nil)

		invoice, err := f.uc.IssueInvoice(ctx, params)
		require.NoError(t, err)
		assert.Zero(t, invoice.Len())
		assert.Equal(t, []int{0}, f.observer.lines)
	})
}
