package gateway

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-reconciliation/internal/domain"
)

func sampleReport() *domain.Report {
	paid := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	report := &domain.Report{
		RunID: "run-1",
		Items: []domain.LineItem{
			{
				SaleID:        "TX-001",
				Customer:      "Alice",
				GrossAmount:   decimal.RequireFromString("100"),
				PaymentMethod: domain.PaymentPix,
				GatewayFee:    decimal.RequireFromString("3"),
				AdditionalFee: decimal.RequireFromString("0.5"),
				NetAmount:     decimal.RequireFromString("96.5"),
				ProductCost:   decimal.RequireFromString("50"),
				Profit:        decimal.RequireFromString("46.5"),
				ROI:           decimal.RequireFromString("93"),
				Status:        domain.OutcomeApproved,
				PaymentDate:   &paid,
			},
			{
				SaleID:        "TX-002",
				Customer:      "Bob",
				GrossAmount:   decimal.RequireFromString("80"),
				PaymentMethod: domain.PaymentBoleto,
				GatewayFee:    decimal.Zero,
				AdditionalFee: decimal.Zero,
				NetAmount:     decimal.RequireFromString("80"),
				ProductCost:   decimal.RequireFromString("90"),
				Profit:        decimal.RequireFromString("-10"),
				ROI:           decimal.RequireFromString("-11.11"),
				Status:        domain.OutcomeNotFoundInPortal,
			},
		},
	}
	report.ComputeTotals()
	return report
}

func TestCSVReportWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	writer := NewCSVReportWriter()
	require.NoError(t, writer.Write(sampleReport(), path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	// header + 2 items + totals row
	require.Len(t, rows, 4)
	assert.Equal(t, reportHeader, rows[0])

	assert.Equal(t, "TX-001", rows[1][0])
	assert.Equal(t, "96.50", rows[1][6])
	assert.Equal(t, "Approved", rows[1][10])
	assert.Equal(t, "2025-01-15", rows[1][11])

	assert.Equal(t, "TX-002", rows[2][0])
	assert.Equal(t, "Not Found In Portal", rows[2][10])
	assert.Equal(t, "", rows[2][11], "fallback rows have no payment date")

	totals := rows[3]
	assert.Equal(t, "TOTAL", totals[0])
	assert.Equal(t, "180.00", totals[2])
	assert.Equal(t, "176.50", totals[6])
	assert.Equal(t, "36.50", totals[8])
}

func TestJSONReportWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	writer := NewJSONReportWriter()
	require.NoError(t, writer.Write(sampleReport(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, "TX-001", decoded.Items[0].SaleID)
	assert.True(t, decoded.Totals.GrossAmount.Equal(decimal.RequireFromString("180")))
}

func TestReportComputeTotals(t *testing.T) {
	report := sampleReport()
	assert.Equal(t, "180.00", report.Totals.GrossAmount.StringFixed(2))
	assert.Equal(t, "176.50", report.Totals.NetAmount.StringFixed(2))
	assert.Equal(t, "36.50", report.Totals.Profit.StringFixed(2))
}
