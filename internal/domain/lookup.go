package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel lookup errors. Portal implementations wrap these (directly or via
// LookupError) so the orchestrator can select a recovery policy with
// errors.Is without knowing the concrete transport.
var (
	// ErrTransactionNotFound means the sale ID does not exist on the portal
	// side, or has not been processed there yet. Per-record fallback.
	ErrTransactionNotFound = errors.New("transaction not found in portal")

	// ErrPortalTimeout means a single lookup did not complete within the
	// configured deadline. Per-record fallback.
	ErrPortalTimeout = errors.New("portal lookup timed out")

	// ErrPortalConnection means the portal is unreachable. Fatal to the
	// batch: remaining records are never attempted.
	ErrPortalConnection = errors.New("portal connection failure")

	// ErrInvalidResponseData means the portal answered but its payload could
	// not be parsed into a GatewayLookupResult. Per-record skip.
	ErrInvalidResponseData = errors.New("invalid portal response data")
)

// LookupError carries the sale ID and cause of a failed portal lookup.
type LookupError struct {
	SaleID string
	Reason string
	Err    error
}

func (e *LookupError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("lookup %s: %v", e.SaleID, e.Err)
	}
	return fmt.Sprintf("lookup %s: %s: %v", e.SaleID, e.Reason, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// GatewayLookupResult is what the portal reported for one sale. RawStatus is
// the portal's status text verbatim; classification into an outcome is the
// orchestrator's job. PaymentDate is nil while the portal still shows the
// payment as unsettled. Results are transient and never persisted.
type GatewayLookupResult struct {
	GatewayFee  decimal.Decimal
	RawStatus   string
	PaymentDate *time.Time
}
