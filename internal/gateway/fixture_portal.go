package gateway

import (
	"context"
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"

	"sales-reconciliation/internal/domain"
	"sales-reconciliation/internal/fees"
)

// FixturePortal is an offline usecase.PortalLookup used when no real portal
// is reachable and in tests. It derives the gateway fee from the local fee
// rule table and can inject simulated divergences: with probability
// divergenceRate a lookup reports a fee inflated by up to five currency
// units, with a divergent status text.
//
// The random source is injected, never a package-level global, so runs are
// reproducible under a fixed seed. Results are memoized per sale ID: the
// first answer for a sale is the answer for the whole run.
type FixturePortal struct {
	rng            *rand.Rand
	divergenceRate float64

	mu      sync.Mutex
	results map[string]fixtureResult
}

type fixtureResult struct {
	result domain.GatewayLookupResult
	err    error
}

// NewFixturePortal creates a fixture portal. divergenceRate is the fraction
// of lookups that report an inflated fee (the original portal shows roughly
// one divergence per ten transactions; pass 0 for fully clean runs).
func NewFixturePortal(rng *rand.Rand, divergenceRate float64) *FixturePortal {
	return &FixturePortal{
		rng:            rng,
		divergenceRate: divergenceRate,
		results:        make(map[string]fixtureResult),
	}
}

// Record pre-seeds the portal's answer for one sale ID. Tests use this to
// script exact results, including lookup failures.
func (p *FixturePortal) Record(saleID string, result domain.GatewayLookupResult, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results[saleID] = fixtureResult{result: result, err: err}
}

// LookupSale simulates the portal's answer for a sale it has not been
// scripted for: the fee the gateway should have charged for the method,
// possibly diverged.
func (p *FixturePortal) LookupSale(saleID string, grossAmount decimal.Decimal, method domain.PaymentMethod) (domain.GatewayLookupResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if prior, ok := p.results[saleID]; ok {
		return prior.result, prior.err
	}

	fee, err := fees.ComputeFee(grossAmount, string(method))
	if err != nil {
		lookupErr := &domain.LookupError{SaleID: saleID, Reason: "unsupported payment method", Err: err}
		p.results[saleID] = fixtureResult{err: lookupErr}
		return domain.GatewayLookupResult{}, lookupErr
	}

	status := "Approved"
	if p.divergenceRate > 0 && p.rng.Float64() < p.divergenceRate {
		// Inflate by 0.50..5.00 to surface as a fee discrepancy downstream.
		inflation := decimal.NewFromFloat(0.50 + p.rng.Float64()*4.50)
		fee = fee.Add(inflation)
		status = "Divergent (fee mismatch)"
	}

	result := domain.GatewayLookupResult{GatewayFee: fee, RawStatus: status}
	p.results[saleID] = fixtureResult{result: result}
	return result, nil
}

// Seed precomputes portal answers for a whole ledger. Offline runs seed the
// fixture from the input sales before reconciliation starts so that every
// sale has a simulated portal record.
func (p *FixturePortal) Seed(sales []domain.SaleRecord) {
	for _, sale := range sales {
		_, _ = p.LookupSale(sale.SaleID, sale.GrossAmount, sale.PaymentMethod)
	}
}

// Lookup implements usecase.PortalLookup for sale IDs scripted via Record.
// Unscripted IDs are reported as not found, mirroring a portal that has no
// record of the transaction.
func (p *FixturePortal) Lookup(ctx context.Context, saleID string) (domain.GatewayLookupResult, error) {
	p.mu.Lock()
	prior, ok := p.results[saleID]
	p.mu.Unlock()

	if !ok {
		return domain.GatewayLookupResult{}, &domain.LookupError{SaleID: saleID, Err: domain.ErrTransactionNotFound}
	}
	return prior.result, prior.err
}

// Close implements usecase.PortalLookup; the fixture holds no session.
func (p *FixturePortal) Close() error {
	return nil
}
