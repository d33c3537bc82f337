package usecase

import (
	"context"

	"sales-reconciliation/internal/domain"
)

// SaleSource produces the already-validated sales ledger. Implementations
// must fail fast on schema problems (missing columns, blank required cells,
// non-positive amounts, unknown payment methods) before any reconciliation
// starts, naming the offending column or value in the error.
//
//go:generate mockgen -destination=mocks/mock_collaborators.go -source=interface.go SaleSource,PortalLookup
type SaleSource interface {
	Sales(ctx context.Context, path string) ([]domain.SaleRecord, error)
}

// PortalLookup resolves one sale against the payment portal. Lookup is
// idempotent within a run: the same sale ID yields the same result. Failures
// wrap exactly one of the domain lookup sentinels (ErrTransactionNotFound,
// ErrPortalTimeout, ErrPortalConnection, ErrInvalidResponseData); the
// Reconciler selects its recovery policy from those and nothing else.
//
// The underlying portal session, if any, is owned by a single Reconciler for
// the duration of a batch; Close releases it and must be called on every
// exit path.
type PortalLookup interface {
	Lookup(ctx context.Context, saleID string) (domain.GatewayLookupResult, error)
	Close() error
}
