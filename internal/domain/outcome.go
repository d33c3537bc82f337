package domain

import "strings"

// ReconciliationOutcome classifies what the payment portal reported for a
// sale. Approved, Pending and Divergent come from the portal's own status
// text; NotFoundInPortal and DivergentTimeout are orchestrator-assigned
// fallbacks for lookups that never produced a genuine portal result, and must
// never be conflated with a real Divergent answer from the gateway.
type ReconciliationOutcome string

const (
	OutcomeApproved  ReconciliationOutcome = "Approved"
	OutcomePending   ReconciliationOutcome = "Pending"
	OutcomeDivergent ReconciliationOutcome = "Divergent"

	OutcomeNotFoundInPortal ReconciliationOutcome = "Not Found In Portal"
	OutcomeDivergentTimeout ReconciliationOutcome = "Divergent (Timeout)"
)

// ClassifyStatus maps the portal's raw status text to an outcome. The portal
// vocabulary is not contractually fixed, so matching is a permissive
// case-insensitive substring check; unknown text degrades to Divergent
// (needs review) rather than erroring.
func ClassifyStatus(raw string) ReconciliationOutcome {
	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, "APPROVED"):
		return OutcomeApproved
	case strings.Contains(upper, "PENDING"):
		return OutcomePending
	default:
		return OutcomeDivergent
	}
}
