package metrics

import (
	"context"

	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/invoicing"
	"sales-invoicing/internal/domain/sharedkernel"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedTaxPolicy counts and times every call to the wrapped policy.
// Results and errors pass through untouched.
type InstrumentedTaxPolicy struct {
	next    invoicing.TaxPolicy
	metrics *Metrics
}

var _ invoicing.TaxPolicy = (*InstrumentedTaxPolicy)(nil)

func NewInstrumentedTaxPolicy(next invoicing.TaxPolicy, m *Metrics) *InstrumentedTaxPolicy {
	return &InstrumentedTaxPolicy{next: next, metrics: m}
}

func (p *InstrumentedTaxPolicy) CalculateTax(ctx context.Context, productType catalog.ProductType, amount sharedkernel.Money) (invoicing.Tax, error) {
	timer := prometheus.NewTimer(p.metrics.TaxLatency.WithLabelValues(productType.String()))
	defer timer.ObserveDuration()

	tax, err := p.next.CalculateTax(ctx, productType, amount)
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	p.metrics.TaxCalls.WithLabelValues(productType.String(), outcome).Inc()
	return tax, err
}
