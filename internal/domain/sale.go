package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a sale was paid. The set is closed; the fee
// rule table in internal/fees must cover every member (enforced by test).
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentPix        PaymentMethod = "pix"
	PaymentBoleto     PaymentMethod = "boleto"
)

// AllPaymentMethods lists every member of the closed enumeration, in a stable
// order used for error messages and completeness checks.
var AllPaymentMethods = []PaymentMethod{
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentPix,
	PaymentBoleto,
}

// ErrInvalidPaymentMethod is the sentinel wrapped by InvalidPaymentMethodError.
var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// InvalidPaymentMethodError reports a payment method string that does not
// normalize to a known enumeration member.
type InvalidPaymentMethodError struct {
	Value string
}

func (e *InvalidPaymentMethodError) Error() string {
	valid := make([]string, len(AllPaymentMethods))
	for i, m := range AllPaymentMethods {
		valid[i] = string(m)
	}
	return fmt.Sprintf("invalid payment method %q: valid methods are %s",
		e.Value, strings.Join(valid, ", "))
}

func (e *InvalidPaymentMethodError) Unwrap() error {
	return ErrInvalidPaymentMethod
}

// ParsePaymentMethod normalizes a raw payment method string (trimmed,
// case-insensitive) to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	normalized := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range AllPaymentMethods {
		if normalized == m {
			return m, nil
		}
	}
	return "", &InvalidPaymentMethodError{Value: s}
}

// SaleRecord is one row of the merchant's internal sales ledger. Records are
// produced fully validated by a SaleSource and never mutated afterwards.
type SaleRecord struct {
	SaleID        string          `json:"sale_id"`
	Customer      string          `json:"customer"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	SaleDate      time.Time       `json:"sale_date"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	ProductCost   decimal.Decimal `json:"product_cost"`
}
