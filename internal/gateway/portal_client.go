package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sales-reconciliation/internal/domain"
)

// portalResponse is the wire shape of the payment portal's transaction
// endpoint. Monetary values arrive as pt-BR formatted strings ("R$ 1.234,56")
// and payment dates as dd/mm/yyyy, or placeholder text while unsettled.
type portalResponse struct {
	TransactionID string `json:"transaction_id"`
	GatewayFee    string `json:"gateway_fee"`
	Status        string `json:"status"`
	PaymentDate   string `json:"payment_date"`
}

// PortalClient implements usecase.PortalLookup against the payment portal's
// HTTP API. All locale-specific parsing of the portal's money and date
// strings lives here; the core only ever sees typed values or a lookup error.
//
// Successful results are memoized per sale ID so repeated lookups within one
// run are idempotent and never hit the portal twice.
type PortalClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
	cache      map[string]domain.GatewayLookupResult
}

// NewPortalClient creates a portal client. timeout bounds each individual
// lookup; the portal being slower than that is reported as ErrPortalTimeout.
func NewPortalClient(baseURL string, timeout time.Duration, logger *slog.Logger) *PortalClient {
	return &PortalClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     logger,
		cache:      make(map[string]domain.GatewayLookupResult),
	}
}

// Lookup fetches the portal's record of one sale.
func (c *PortalClient) Lookup(ctx context.Context, saleID string) (domain.GatewayLookupResult, error) {
	if cached, ok := c.cache[saleID]; ok {
		return cached, nil
	}
	c.logger.Debug("looking up transaction in portal", "sale_id", saleID)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/api/transactions/%s", c.baseURL, saleID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.GatewayLookupResult{}, &domain.LookupError{
			SaleID: saleID, Reason: "building request", Err: fmt.Errorf("%w: %v", domain.ErrPortalConnection, err),
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.GatewayLookupResult{}, c.classifyTransportError(saleID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.GatewayLookupResult{}, &domain.LookupError{
			SaleID: saleID, Err: domain.ErrTransactionNotFound,
		}
	case resp.StatusCode != http.StatusOK:
		return domain.GatewayLookupResult{}, &domain.LookupError{
			SaleID: saleID,
			Reason: fmt.Sprintf("unexpected portal status %d", resp.StatusCode),
			Err:    domain.ErrInvalidResponseData,
		}
	}

	var body portalResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.GatewayLookupResult{}, &domain.LookupError{
			SaleID: saleID, Reason: "decoding response body", Err: fmt.Errorf("%w: %v", domain.ErrInvalidResponseData, err),
		}
	}

	result, err := c.parseResult(saleID, body)
	if err != nil {
		return domain.GatewayLookupResult{}, err
	}

	c.cache[saleID] = result
	return result, nil
}

// Close releases the portal session. The client keeps no per-run server
// state beyond idle connections, so this is always safe to call.
func (c *PortalClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// classifyTransportError separates a single slow lookup (timeout, retriable
// batch-wise) from an unreachable portal (fatal to the batch).
func (c *PortalClient) classifyTransportError(saleID string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &domain.LookupError{
			SaleID: saleID,
			Reason: fmt.Sprintf("no response within %s", c.timeout),
			Err:    domain.ErrPortalTimeout,
		}
	}
	return &domain.LookupError{
		SaleID: saleID, Reason: "transport failure", Err: fmt.Errorf("%w: %v", domain.ErrPortalConnection, err),
	}
}

func (c *PortalClient) parseResult(saleID string, body portalResponse) (domain.GatewayLookupResult, error) {
	fee, err := parsePortalMoney(body.GatewayFee)
	if err != nil {
		return domain.GatewayLookupResult{}, &domain.LookupError{
			SaleID: saleID, Reason: "parsing gateway fee", Err: err,
		}
	}
	if fee.IsNegative() {
		return domain.GatewayLookupResult{}, &domain.LookupError{
			SaleID: saleID,
			Reason: fmt.Sprintf("negative gateway fee %s", fee),
			Err:    domain.ErrInvalidResponseData,
		}
	}

	paymentDate, err := parsePortalDate(body.PaymentDate)
	if err != nil {
		return domain.GatewayLookupResult{}, &domain.LookupError{
			SaleID: saleID, Reason: "parsing payment date", Err: err,
		}
	}

	return domain.GatewayLookupResult{
		GatewayFee:  fee,
		RawStatus:   body.Status,
		PaymentDate: paymentDate,
	}, nil
}

// parsePortalMoney converts the portal's pt-BR monetary string to a decimal:
// "R$ 1.234,56" -> 1234.56. Thousands separators are dots, the decimal
// separator is a comma.
func parsePortalMoney(value string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("R$", "", " ", "", ".", "").Replace(value)
	clean = strings.ReplaceAll(clean, ",", ".")

	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: monetary value %q", domain.ErrInvalidResponseData, value)
	}
	return amount, nil
}

// parsePortalDate handles the portal's payment date field. Placeholder text
// for unsettled payments ("Pending", "processing") and an empty field mean
// no date yet; anything else must be a strict dd/mm/yyyy value.
func parsePortalDate(value string) (*time.Time, error) {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return nil, nil
	}
	lower := strings.ToLower(clean)
	if strings.Contains(lower, "pending") || strings.Contains(lower, "processing") {
		return nil, nil
	}

	if len(clean) != 10 {
		return nil, fmt.Errorf("%w: payment date %q", domain.ErrInvalidResponseData, value)
	}
	parsed, err := time.Parse("02/01/2006", clean)
	if err != nil {
		return nil, fmt.Errorf("%w: payment date %q", domain.ErrInvalidResponseData, value)
	}
	return &parsed, nil
}
