package fees

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-reconciliation/internal/domain"
)

// Every payment method must have exactly one fee rule. A method added to the
// enumeration without a rule would silently compute a zero fee, which this
// test exists to prevent.
func TestRuleTableCoversAllPaymentMethods(t *testing.T) {
	for _, method := range domain.AllPaymentMethods {
		rule := RuleFor(method)
		assert.NotEmpty(t, rule.Kind, "method %s has no fee rule", method)
		assert.True(t, rule.Value.IsPositive(), "method %s has a non-positive rule value", method)
	}
}

func TestComputeFee(t *testing.T) {
	tests := []struct {
		name        string
		grossAmount string
		method      string
		want        string
		wantErr     error
	}{
		{
			name:        "pix is 0.5 percent",
			grossAmount: "100",
			method:      "pix",
			want:        "0.50",
		},
		{
			name:        "credit card is 2.5 percent",
			grossAmount: "200",
			method:      "credit_card",
			want:        "5.00",
		},
		{
			name:        "debit card is 1.8 percent",
			grossAmount: "100",
			method:      "debit_card",
			want:        "1.80",
		},
		{
			name:        "boleto is a fixed fee",
			grossAmount: "10",
			method:      "boleto",
			want:        "3.50",
		},
		{
			name:        "method is normalized before lookup",
			grossAmount: "100",
			method:      "  PIX ",
			want:        "0.50",
		},
		{
			name:        "unknown method fails",
			grossAmount: "100",
			method:      "bitcoin",
			wantErr:     domain.ErrInvalidPaymentMethod,
		},
		{
			name:        "empty method fails",
			grossAmount: "100",
			method:      "",
			wantErr:     domain.ErrInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gross, err := decimal.NewFromString(tt.grossAmount)
			require.NoError(t, err)

			got, err := ComputeFee(gross, tt.method)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

// A fixed rule's fee must not depend on the gross amount.
func TestComputeFeeFixedRuleIgnoresAmount(t *testing.T) {
	for _, gross := range []string{"0.01", "1", "10", "999.99", "1000000"} {
		amount, err := decimal.NewFromString(gross)
		require.NoError(t, err)

		fee, err := ComputeFee(amount, "boleto")
		require.NoError(t, err)
		assert.Equal(t, "3.50", fee.StringFixed(2), "gross %s changed the boleto fee", gross)
	}
}

func TestComputeFeeErrorListsValidMethods(t *testing.T) {
	_, err := ComputeFee(decimal.NewFromInt(100), "bitcoin")
	require.Error(t, err)
	for _, method := range domain.AllPaymentMethods {
		assert.Contains(t, err.Error(), string(method))
	}
}
