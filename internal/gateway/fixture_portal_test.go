package gateway

import (
	"context"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-reconciliation/internal/domain"
)

func TestFixturePortalDerivesFeeFromRuleTable(t *testing.T) {
	portal := NewFixturePortal(rand.New(rand.NewSource(1)), 0)

	result, err := portal.LookupSale("TX-001", decimal.NewFromInt(100), domain.PaymentPix)
	require.NoError(t, err)
	assert.Equal(t, "0.50", result.GatewayFee.StringFixed(2))
	assert.Equal(t, "Approved", result.RawStatus)
}

// The first answer for a sale ID is the answer for the whole run, even when
// divergences are being injected randomly.
func TestFixturePortalIsIdempotentWithinRun(t *testing.T) {
	portal := NewFixturePortal(rand.New(rand.NewSource(7)), 0.5)

	gross := decimal.NewFromInt(200)
	first, err := portal.LookupSale("TX-001", gross, domain.PaymentCreditCard)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := portal.LookupSale("TX-001", gross, domain.PaymentCreditCard)
		require.NoError(t, err)
		assert.True(t, first.GatewayFee.Equal(again.GatewayFee))
		assert.Equal(t, first.RawStatus, again.RawStatus)
	}

	// The PortalLookup view returns the same memoized answer.
	viaLookup, err := portal.Lookup(context.Background(), "TX-001")
	require.NoError(t, err)
	assert.True(t, first.GatewayFee.Equal(viaLookup.GatewayFee))
}

func TestFixturePortalSameSeedSameResults(t *testing.T) {
	sales := []domain.SaleRecord{
		{SaleID: "TX-001", GrossAmount: decimal.NewFromInt(100), PaymentMethod: domain.PaymentPix},
		{SaleID: "TX-002", GrossAmount: decimal.NewFromInt(200), PaymentMethod: domain.PaymentCreditCard},
		{SaleID: "TX-003", GrossAmount: decimal.NewFromInt(50), PaymentMethod: domain.PaymentBoleto},
	}

	a := NewFixturePortal(rand.New(rand.NewSource(42)), 0.3)
	b := NewFixturePortal(rand.New(rand.NewSource(42)), 0.3)
	a.Seed(sales)
	b.Seed(sales)

	for _, sale := range sales {
		fromA, errA := a.Lookup(context.Background(), sale.SaleID)
		fromB, errB := b.Lookup(context.Background(), sale.SaleID)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.True(t, fromA.GatewayFee.Equal(fromB.GatewayFee), "sale %s", sale.SaleID)
		assert.Equal(t, fromA.RawStatus, fromB.RawStatus, "sale %s", sale.SaleID)
	}
}

func TestFixturePortalUnknownSaleIsNotFound(t *testing.T) {
	portal := NewFixturePortal(rand.New(rand.NewSource(1)), 0)

	_, err := portal.Lookup(context.Background(), "TX-404")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestFixturePortalScriptedFailure(t *testing.T) {
	portal := NewFixturePortal(rand.New(rand.NewSource(1)), 0)
	portal.Record("TX-001", domain.GatewayLookupResult{},
		&domain.LookupError{SaleID: "TX-001", Err: domain.ErrPortalTimeout})

	_, err := portal.Lookup(context.Background(), "TX-001")
	assert.ErrorIs(t, err, domain.ErrPortalTimeout)
}

func TestFixturePortalUnsupportedMethodFails(t *testing.T) {
	portal := NewFixturePortal(rand.New(rand.NewSource(1)), 0)

	_, err := portal.LookupSale("TX-001", decimal.NewFromInt(100), domain.PaymentMethod("bitcoin"))
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
}
