package fees

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation sentinels for ComputeFinancials preconditions. Each violated
// precondition is a distinct failure so callers can log a precise reason.
var (
	ErrNonPositiveAmount   = errors.New("gross amount must be positive")
	ErrNegativeGatewayFee  = errors.New("gateway fee cannot be negative")
	ErrNegativeProductCost = errors.New("product cost cannot be negative")
)

// FinancialResult holds the derived profitability figures for one sale, each
// rounded to 2 decimal places.
type FinancialResult struct {
	AdditionalFee decimal.Decimal
	NetAmount     decimal.Decimal
	Profit        decimal.Decimal
	ROI           decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeFinancials derives the additional fee, net amount, profit and ROI of
// a sale. Pure function, safe for concurrent use. Intermediate values keep
// full precision; rounding to 2 decimal places happens once per output field
// so rounding error never compounds across the derived fields. ROI is defined
// as exactly zero when the product cost is zero.
func ComputeFinancials(grossAmount, gatewayFee, productCost decimal.Decimal, method string) (FinancialResult, error) {
	if !grossAmount.IsPositive() {
		return FinancialResult{}, fmt.Errorf("gross amount %s: %w", grossAmount, ErrNonPositiveAmount)
	}
	if gatewayFee.IsNegative() {
		return FinancialResult{}, fmt.Errorf("gateway fee %s: %w", gatewayFee, ErrNegativeGatewayFee)
	}
	if productCost.IsNegative() {
		return FinancialResult{}, fmt.Errorf("product cost %s: %w", productCost, ErrNegativeProductCost)
	}

	additionalFee, err := ComputeFee(grossAmount, method)
	if err != nil {
		return FinancialResult{}, err
	}

	netAmount := grossAmount.Sub(gatewayFee).Sub(additionalFee)
	profit := netAmount.Sub(productCost)

	roi := decimal.Zero
	if productCost.IsPositive() {
		roi = profit.Div(productCost).Mul(hundred)
	}

	return FinancialResult{
		AdditionalFee: additionalFee.Round(2),
		NetAmount:     netAmount.Round(2),
		Profit:        profit.Round(2),
		ROI:           roi.Round(2),
	}, nil
}
