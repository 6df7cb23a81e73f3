package domain

import "time"

// ============================================================
// Detail view
// ============================================================

// ViewRequest is the body for POST /v1/views.
type ViewRequest struct {
	NGOID string `json:"ngoId" validate:"required"`
}

// AggregateTotals are the running counters of a detail view.
type AggregateTotals struct {
	TotalRaised int64 `json:"totalRaised"`
	TotalDonors int64 `json:"totalDonors"`
}

// ViewSnapshot is the full state of a mounted detail view.
type ViewSnapshot struct {
	ViewID       string               `json:"viewId"`
	Organization *OrganizationSummary `json:"organization"`
	Totals       AggregateTotals      `json:"totals"`
	Ledger       LedgerSnapshot       `json:"ledger"`
	Donation     DonationOutcome      `json:"donation"`
	HasDonated   bool                 `json:"hasDonated"`
	// Divergence explains that Totals, Ledger and the donor account are
	// updated independently and need not agree.
	Divergence string    `json:"divergence"`
	MountedAt  time.Time `json:"mountedAt"`
}

// DivergenceNote is attached to every ViewSnapshot.
const DivergenceNote = "totals, ledger rows and account totals are updated independently; the ledger keeps only the most recent rows"
