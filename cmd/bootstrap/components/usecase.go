package components

import (
	"sales-invoicing/internal/domain/invoicing"
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/infra/metrics"
	"sales-invoicing/internal/infra/taxclient"
	"sales-invoicing/internal/pkg/clock"
	"sales-invoicing/internal/pkg/config"
	"sales-invoicing/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseTaxModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	published.NewUUIDGenerator,
	fx.Annotate(
		invoicing.NewInvoiceFactory,
		fx.As(new(invoicing.InvoiceFactory)),
	),
	invoicing.NewBookKeeper,
)

var usecaseTaxModule = fx.Module("usecase/tax",
	fx.Provide(
		NewTaxServiceClient,
		NewTaxPolicy,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewIssuanceObserver,
		commands.NewInvoiceCommands,
	),
)

func NewTaxServiceClient(cfg config.Config) *taxclient.Client {
	return taxclient.NewClient(cfg.TaxService)
}

// NewTaxPolicy is the policy handed to BookKeeper: the remote tax service behind a metrics decorator.
func NewTaxPolicy(client *taxclient.Client, m *metrics.Metrics) invoicing.TaxPolicy {
	return metrics.NewInstrumentedTaxPolicy(client, m)
}

func NewIssuanceObserver(m *metrics.Metrics) commands.IssuanceObserver {
	return m
}
