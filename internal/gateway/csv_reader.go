package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sales-reconciliation/internal/domain"
)

// Column names required in the sales ledger CSV, in any order.
var requiredColumns = []string{
	"sale_id",
	"customer",
	"gross_amount",
	"sale_date",
	"payment_method",
	"product_cost",
}

// CSVSaleSource implements the usecase.SaleSource interface for CSV files.
// Every schema violation fails the whole read, naming the offending column
// and value: reconciliation never starts on a partially valid ledger.
type CSVSaleSource struct{}

// NewCSVSaleSource creates a new sale source instance.
func NewCSVSaleSource() *CSVSaleSource {
	return &CSVSaleSource{}
}

// Sales reads and validates the sales ledger CSV file.
func (s *CSVSaleSource) Sales(ctx context.Context, path string) ([]domain.SaleRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var sales []domain.SaleRecord
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		line++

		sale, err := parseSale(record, columns, line)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	if len(sales) == 0 {
		return nil, fmt.Errorf("sales file %s contains no data rows", path)
	}
	return sales, nil
}

// mapColumns resolves each required column name to its index in the header.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s (found: %s)",
			strings.Join(missing, ", "), strings.Join(header, ", "))
	}
	return columns, nil
}

func parseSale(record []string, columns map[string]int, line int) (domain.SaleRecord, error) {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	for _, name := range requiredColumns {
		if cell(name) == "" {
			return domain.SaleRecord{}, fmt.Errorf("line %d: column %q is empty", line, name)
		}
	}

	grossAmount, err := decimal.NewFromString(cell("gross_amount"))
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("line %d: could not parse gross_amount %q: %w", line, cell("gross_amount"), err)
	}
	if !grossAmount.IsPositive() {
		return domain.SaleRecord{}, fmt.Errorf("line %d: gross_amount %s must be greater than zero", line, grossAmount)
	}

	productCost, err := decimal.NewFromString(cell("product_cost"))
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("line %d: could not parse product_cost %q: %w", line, cell("product_cost"), err)
	}
	if productCost.IsNegative() {
		return domain.SaleRecord{}, fmt.Errorf("line %d: product_cost %s cannot be negative", line, productCost)
	}

	saleDate, err := time.Parse(time.DateOnly, cell("sale_date"))
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("line %d: could not parse sale_date %q: %w", line, cell("sale_date"), err)
	}

	method, err := domain.ParsePaymentMethod(cell("payment_method"))
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("line %d: %w", line, err)
	}

	return domain.SaleRecord{
		SaleID:        cell("sale_id"),
		Customer:      cell("customer"),
		GrossAmount:   grossAmount,
		SaleDate:      saleDate,
		PaymentMethod: method,
		ProductCost:   productCost,
	}, nil
}
