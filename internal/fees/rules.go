// Package fees holds the merchant-side fee rules and the profitability
// arithmetic applied to every reconciled sale. All monetary math uses
// shopspring/decimal; values are only rounded when they leave this package.
package fees

import (
	"github.com/shopspring/decimal"

	"sales-reconciliation/internal/domain"
)

// RuleKind distinguishes percentage-of-amount rules from flat fees.
type RuleKind string

const (
	Percentage RuleKind = "percentage"
	Fixed      RuleKind = "fixed"
)

// FeeRule is the additional fee charged for one payment method. For
// Percentage rules Value is a fraction of the gross amount (0.025 = 2.5%);
// for Fixed rules Value is the fee itself, independent of the amount.
type FeeRule struct {
	Kind  RuleKind
	Value decimal.Decimal
}

// feeRules must cover every member of domain.AllPaymentMethods. Completeness
// is asserted by TestRuleTableCoversAllPaymentMethods rather than checked per
// call: RuleFor is a total function over the closed enumeration.
var feeRules = map[domain.PaymentMethod]FeeRule{
	domain.PaymentCreditCard: {Kind: Percentage, Value: decimal.NewFromFloat(0.025)},
	domain.PaymentDebitCard:  {Kind: Percentage, Value: decimal.NewFromFloat(0.018)},
	domain.PaymentPix:        {Kind: Percentage, Value: decimal.NewFromFloat(0.005)},
	domain.PaymentBoleto:     {Kind: Fixed, Value: decimal.NewFromFloat(3.50)},
}

// RuleFor returns the fee rule for a payment method.
func RuleFor(method domain.PaymentMethod) FeeRule {
	return feeRules[method]
}

// ComputeFee calculates the additional fee for a sale. The method string is
// normalized (trimmed, case-insensitive); an unknown method fails with
// domain.ErrInvalidPaymentMethod, never with a silent zero fee.
func ComputeFee(grossAmount decimal.Decimal, method string) (decimal.Decimal, error) {
	parsed, err := domain.ParsePaymentMethod(method)
	if err != nil {
		return decimal.Zero, err
	}

	rule := RuleFor(parsed)
	if rule.Kind == Percentage {
		return grossAmount.Mul(rule.Value), nil
	}
	return rule.Value, nil
}
