package commands

import (
	"context"
	"log/slog"

	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/invoicing"
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
	"sales-invoicing/internal/infra"
	"sales-invoicing/internal/pkg/errs"
)

var (
	ErrInvalidRequest          = errs.New("invalid invoice request")
	ErrClientNotFound          = errs.New("client not found")
	ErrProductNotFound         = errs.New("product not found")
	ErrUnsupportedProductType  = errs.New("unsupported product type")
	ErrTaxCalculationFailed    = errs.New("tax calculation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type IssueInvoiceItem struct {
	ProductID published.ID
	Quantity  int
	TotalCost sharedkernel.Money
}

type IssueInvoiceParams struct {
	ClientID published.ID
	Items    []IssueInvoiceItem
}

type ClientReadStore interface {
	FindByID(ctx context.Context, id published.ID) (published.ClientData, error)
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id published.ID) (catalog.ProductData, error)
}

// CatalogReads are the stores available inside one catalog snapshot.
type CatalogReads interface {
	Clients() ClientReadStore
	Products() ProductReadStore
}

// CatalogSnapshot runs fn against a single consistent view of clients and products.
type CatalogSnapshot interface {
	WithinSnapshot(ctx context.Context, fn func(ctx context.Context, reads CatalogReads) error) error
}

type IssuanceObserver interface {
	ObserveIssuance(lines int, err error)
}

type InvoiceCommands interface {
	IssueInvoice(ctx context.Context, params IssueInvoiceParams) (*invoicing.Invoice, error)
}

type invoiceUseCaseImpl struct {
	snapshot   CatalogSnapshot
	bookKeeper *invoicing.BookKeeper
	taxPolicy  invoicing.TaxPolicy
	observer   IssuanceObserver
	logger     *slog.Logger
}

func NewInvoiceCommands(
	snapshot CatalogSnapshot,
	bookKeeper *invoicing.BookKeeper,
	taxPolicy invoicing.TaxPolicy,
	observer IssuanceObserver,
	logger *slog.Logger,
) InvoiceCommands {
	return &invoiceUseCaseImpl{
		snapshot:   snapshot,
		bookKeeper: bookKeeper,
		taxPolicy:  taxPolicy,
		observer:   observer,
		logger:     logger,
	}
}

func (uc *invoiceUseCaseImpl) IssueInvoice(ctx context.Context, params IssueInvoiceParams) (*invoicing.Invoice, error) {
	invoice, err := uc.issue(ctx, params)
	lines := 0
	if invoice != nil {
		lines = invoice.Len()
	}
	uc.observer.ObserveIssuance(lines, err)
	if err != nil {
		uc.logger.WarnContext(ctx, "invoice issuance failed",
			"client_id", params.ClientID.String(),
			"items", len(params.Items),
			"error", err.Error(),
		)
		return nil, err
	}
	return invoice, nil
}

func (uc *invoiceUseCaseImpl) issue(ctx context.Context, params IssueInvoiceParams) (*invoicing.Invoice, error) {
	if params.ClientID.IsZero() {
		return nil, errs.Mark(errs.New("client id is required"), ErrInvalidRequest)
	}

	// Tax calls stay outside the snapshot so no transaction is held open across remote requests.
	var request *invoicing.InvoiceRequest
	err := uc.snapshot.WithinSnapshot(ctx, func(ctx context.Context, reads CatalogReads) error {
		var buildErr error
		request, buildErr = buildRequest(ctx, reads, params)
		return buildErr
	})
	if err != nil {
		if isMarkedIssueError(err) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	invoice, err := uc.bookKeeper.Issuance(ctx, request, uc.taxPolicy)
	if err != nil {
		if errs.Is(err, invoicing.ErrUnsupportedProductType) {
			return nil, errs.Mark(err, ErrUnsupportedProductType)
		}
		if ctx.Err() != nil {
			return nil, errs.Wrap(err, "invoice issuance cancelled")
		}
		return nil, errs.Mark(err, ErrTaxCalculationFailed)
	}
	return invoice, nil
}

// buildRequest loads snapshots and keeps the caller's item order. Each product is looked up once
// even when it appears on several lines.
func buildRequest(ctx context.Context, reads CatalogReads, params IssueInvoiceParams) (*invoicing.InvoiceRequest, error) {
	client, err := reads.Clients().FindByID(ctx, params.ClientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrClientNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	request := invoicing.NewInvoiceRequest(client)
	snapshots := make(map[published.ID]catalog.ProductData, len(params.Items))
	for _, it := range params.Items {
		product, ok := snapshots[it.ProductID]
		if !ok {
			product, err = findProduct(ctx, reads.Products(), it.ProductID)
			if err != nil {
				return nil, err
			}
			snapshots[it.ProductID] = product
		}

		item, err := invoicing.NewRequestItem(product, it.Quantity, it.TotalCost)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidRequest)
		}
		request.Add(item)
	}
	return request, nil
}

func findProduct(ctx context.Context, products ProductReadStore, id published.ID) (catalog.ProductData, error) {
	if id.IsZero() {
		return catalog.ProductData{}, errs.Mark(errs.New("product id is required"), ErrInvalidRequest)
	}
	product, err := products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return catalog.ProductData{}, errs.Mark(err, ErrProductNotFound)
		}
		return catalog.ProductData{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return product, nil
}

func isMarkedIssueError(err error) bool {
	for _, mark := range []error{ErrInvalidRequest, ErrClientNotFound, ErrProductNotFound, ErrDatabaseOperationFailed} {
		if errs.Is(err, mark) {
			return true
		}
	}
	return false
}
