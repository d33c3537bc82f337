package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one output row of the reconciliation report: the sale's own
// fields, the portal's answer (or fallback values), and the derived
// financials. Exactly one line item exists per input sale that was not
// skipped for malformed data.
type LineItem struct {
	SaleID        string                `json:"sale_id"`
	Customer      string                `json:"customer"`
	GrossAmount   decimal.Decimal       `json:"gross_amount"`
	PaymentMethod PaymentMethod         `json:"payment_method"`
	GatewayFee    decimal.Decimal       `json:"gateway_fee"`
	AdditionalFee decimal.Decimal       `json:"additional_fee"`
	NetAmount     decimal.Decimal       `json:"net_amount"`
	ProductCost   decimal.Decimal       `json:"product_cost"`
	Profit        decimal.Decimal       `json:"profit"`
	ROI           decimal.Decimal       `json:"roi"`
	Status        ReconciliationOutcome `json:"status"`
	PaymentDate   *time.Time            `json:"payment_date,omitempty"`
}

// Totals is the trailing aggregate row of the report.
type Totals struct {
	GrossAmount decimal.Decimal `json:"gross_amount"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	Profit      decimal.Decimal `json:"profit"`
}

// Report is the full result of one reconciliation run. Items preserve input
// order; skipped records are absent, and records never reached after a fatal
// portal failure are counted in Abandoned but have no row.
type Report struct {
	RunID     string     `json:"run_id"`
	Items     []LineItem `json:"items"`
	Totals    Totals     `json:"totals"`
	Skipped   int        `json:"skipped"`
	Abandoned int        `json:"abandoned"`
}

// ComputeTotals sums gross amount, net amount and profit across all items.
func (r *Report) ComputeTotals() {
	totals := Totals{
		GrossAmount: decimal.Zero,
		NetAmount:   decimal.Zero,
		Profit:      decimal.Zero,
	}
	for _, item := range r.Items {
		totals.GrossAmount = totals.GrossAmount.Add(item.GrossAmount)
		totals.NetAmount = totals.NetAmount.Add(item.NetAmount)
		totals.Profit = totals.Profit.Add(item.Profit)
	}
	r.Totals = totals
}
