package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"sales-reconciliation/internal/domain"
	"sales-reconciliation/internal/fees"
)

// Reconciler resolves each sale against the payment portal and accumulates
// the report, one record at a time. Sequential on purpose: the portal
// collaborator typically holds a single exclusive session that does not
// support concurrent use.
//
// Failure policy per record:
//   - portal reports the sale as missing      -> fallback row (Not Found In Portal)
//   - single lookup times out                 -> fallback row (Divergent (Timeout))
//   - portal unreachable                      -> abort the batch, keep accumulated rows
//   - malformed portal response               -> skip the record, continue
//   - malformed sale data / calc precondition -> skip the record, continue
//   - any other error                         -> skip the record, continue
//
// Fallback rows guarantee that every readable input sale appears in the
// output; only an aborted batch leaves records unrepresented, and those are
// counted in Report.Abandoned.
type Reconciler struct {
	portal PortalLookup
	logger *slog.Logger
}

// NewReconciler creates a Reconciler. The portal session is owned by this
// Reconciler for the duration of each Reconcile call; releasing it (Close)
// stays with the caller that constructed the PortalLookup.
func NewReconciler(portal PortalLookup, logger *slog.Logger) *Reconciler {
	return &Reconciler{portal: portal, logger: logger}
}

// Reconcile processes the sales in input order and returns the assembled
// report. It never fails as a whole: every failure class maps to a fallback
// row, a skip, or a batch abort that still preserves the rows produced so
// far.
func (r *Reconciler) Reconcile(ctx context.Context, runID string, sales []domain.SaleRecord) *domain.Report {
	report := &domain.Report{
		RunID: runID,
		Items: make([]domain.LineItem, 0, len(sales)),
	}

	for i, sale := range sales {
		result, err := r.portal.Lookup(ctx, sale.SaleID)
		if err != nil {
			if aborted := r.handleLookupError(report, sale, err, len(sales)-i); aborted {
				break
			}
			continue
		}

		outcome := domain.ClassifyStatus(result.RawStatus)

		financials, err := fees.ComputeFinancials(
			sale.GrossAmount, result.GatewayFee, sale.ProductCost, string(sale.PaymentMethod))
		if err != nil {
			r.logger.Warn("skipping sale: calculation failed",
				"sale_id", sale.SaleID, "error", err)
			report.Skipped++
			continue
		}

		report.Items = append(report.Items, domain.LineItem{
			SaleID:        sale.SaleID,
			Customer:      sale.Customer,
			GrossAmount:   sale.GrossAmount,
			PaymentMethod: sale.PaymentMethod,
			GatewayFee:    result.GatewayFee.Round(2),
			AdditionalFee: financials.AdditionalFee,
			NetAmount:     financials.NetAmount,
			ProductCost:   sale.ProductCost,
			Profit:        financials.Profit,
			ROI:           financials.ROI,
			Status:        outcome,
			PaymentDate:   result.PaymentDate,
		})
	}

	report.ComputeTotals()
	if len(report.Items) == 0 {
		r.logger.Warn("reconciliation produced no output rows")
	}
	return report
}

// handleLookupError applies the per-class recovery policy and reports
// whether the batch must abort.
func (r *Reconciler) handleLookupError(report *domain.Report, sale domain.SaleRecord, err error, remaining int) bool {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		r.logger.Warn("sale not found in portal, emitting fallback row",
			"sale_id", sale.SaleID)
		report.Items = append(report.Items, fallbackLineItem(sale, domain.OutcomeNotFoundInPortal))

	case errors.Is(err, domain.ErrPortalTimeout):
		r.logger.Warn("portal lookup timed out, emitting fallback row",
			"sale_id", sale.SaleID)
		report.Items = append(report.Items, fallbackLineItem(sale, domain.OutcomeDivergentTimeout))

	case errors.Is(err, domain.ErrPortalConnection):
		// Fatal: the portal is down, not just this lookup. Retrying the rest
		// of the batch against a dead counterpart would only mask the outage.
		report.Abandoned = remaining
		r.logger.Error("portal unreachable, abandoning remaining sales",
			"first_unprocessed_sale_id", sale.SaleID,
			"abandoned", remaining,
			"error", err)
		return true

	case errors.Is(err, domain.ErrInvalidResponseData):
		r.logger.Warn("skipping sale: portal returned malformed data",
			"sale_id", sale.SaleID, "error", err)
		report.Skipped++

	default:
		r.logger.Error("skipping sale: unexpected lookup error",
			"sale_id", sale.SaleID, "error", err)
		report.Skipped++
	}
	return false
}

// fallbackLineItem synthesizes the row for a sale whose lookup produced no
// genuine portal data. No fee is deducted: the system refuses to assume a
// fee it could not verify, so the net amount equals the gross amount.
func fallbackLineItem(sale domain.SaleRecord, status domain.ReconciliationOutcome) domain.LineItem {
	profit := sale.GrossAmount.Sub(sale.ProductCost)
	roi := decimal.Zero
	if sale.ProductCost.IsPositive() {
		roi = profit.Div(sale.ProductCost).Mul(decimal.NewFromInt(100))
	}

	return domain.LineItem{
		SaleID:        sale.SaleID,
		Customer:      sale.Customer,
		GrossAmount:   sale.GrossAmount,
		PaymentMethod: sale.PaymentMethod,
		GatewayFee:    decimal.Zero,
		AdditionalFee: decimal.Zero,
		NetAmount:     sale.GrossAmount.Round(2),
		ProductCost:   sale.ProductCost,
		Profit:        profit.Round(2),
		ROI:           roi.Round(2),
		Status:        status,
		PaymentDate:   nil,
	}
}
