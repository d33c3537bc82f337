package gateway

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sales-reconciliation/internal/domain"
)

// reportHeader defines the CSV report's column order.
var reportHeader = []string{
	"sale_id",
	"customer",
	"gross_amount",
	"payment_method",
	"gateway_fee",
	"additional_fee",
	"net_amount",
	"product_cost",
	"profit",
	"roi",
	"status",
	"payment_date",
}

// CSVReportWriter renders a reconciliation report as CSV: a header, one row
// per line item in input order, and a trailing TOTAL row summing gross
// amount, net amount and profit.
type CSVReportWriter struct{}

// NewCSVReportWriter creates a new writer instance.
func NewCSVReportWriter() *CSVReportWriter {
	return &CSVReportWriter{}
}

// Write renders the report to path.
func (w *CSVReportWriter) Write(report *domain.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, item := range report.Items {
		paymentDate := ""
		if item.PaymentDate != nil {
			paymentDate = item.PaymentDate.Format(time.DateOnly)
		}
		row := []string{
			item.SaleID,
			item.Customer,
			item.GrossAmount.StringFixed(2),
			string(item.PaymentMethod),
			item.GatewayFee.StringFixed(2),
			item.AdditionalFee.StringFixed(2),
			item.NetAmount.StringFixed(2),
			item.ProductCost.StringFixed(2),
			item.Profit.StringFixed(2),
			item.ROI.StringFixed(2),
			string(item.Status),
			paymentDate,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write report row for sale %s: %w", item.SaleID, err)
		}
	}

	totals := []string{
		"TOTAL",
		"",
		report.Totals.GrossAmount.StringFixed(2),
		"", "", "",
		report.Totals.NetAmount.StringFixed(2),
		"",
		report.Totals.Profit.StringFixed(2),
		"", "", "",
	}
	if err := writer.Write(totals); err != nil {
		return fmt.Errorf("failed to write totals row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report to %s: %w", path, err)
	}
	return nil
}

// JSONReportWriter renders a reconciliation report as indented JSON,
// including the totals and the skipped/abandoned counters.
type JSONReportWriter struct{}

// NewJSONReportWriter creates a new writer instance.
func NewJSONReportWriter() *JSONReportWriter {
	return &JSONReportWriter{}
}

// Write renders the report to path.
func (w *JSONReportWriter) Write(report *domain.Report, path string) error {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, output, 0o644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}
	return nil
}
