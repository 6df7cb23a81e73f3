package domain

import "fmt"

// ============================================================
// Donations
// ============================================================

// GeneralFund is the target sentinel for an unrestricted donation.
const GeneralFund = "general"

// GeneralFundName is the display name of the GeneralFund target.
const GeneralFundName = "General Fund"

// Donation amount bounds, in the smallest currency unit.
const (
	MinDonation  int64 = 100
	MaxDonation  int64 = 25000
	DonationStep int64 = 100
)

// DonationEvent is the value produced by one successful submission.
// Consumers compare events by pointer identity.
type DonationEvent struct {
	Amount    int64  `json:"amount"`
	Target    string `json:"target"`
	Anonymous bool   `json:"anonymous"`
}

// ValidateDonationAmount checks the slider range and step.
func ValidateDonationAmount(amount int64) error {
	if amount < MinDonation || amount > MaxDonation {
		return &ErrValidation{
			Field:   "amount",
			Message: fmt.Sprintf("must be between %d and %d", MinDonation, MaxDonation),
		}
	}
	if amount%DonationStep != 0 {
		return &ErrValidation{
			Field:   "amount",
			Message: fmt.Sprintf("must be a multiple of %d", DonationStep),
		}
	}
	return nil
}

// TargetName resolves a donation target to its display name.
func TargetName(org *Organization, target string) (string, error) {
	if target == GeneralFund || target == "" {
		return GeneralFundName, nil
	}
	if org != nil {
		if name, ok := org.ProjectName(target); ok {
			return name, nil
		}
	}
	return "", &ErrValidation{Field: "target", Message: fmt.Sprintf("unknown project %q", target)}
}

// ReceiptRecord is the donor-facing receipt of one submission.
type ReceiptRecord struct {
	SerialNumber     string `json:"serialNumber"`
	Amount           int64  `json:"amount"`
	Date             string `json:"date"`
	NGOName          string `json:"ngoName"`
	NGOVerification  string `json:"ngoVerificationId"`
	TargetName       string `json:"donationType"`
	TaxDeductionNote string `json:"taxDeductionNote"`
}

// ReceiptDateLayout renders dates as "19 October 2026".
const ReceiptDateLayout = "2 January 2006"

// TaxDeductionNote is printed on every receipt.
const TaxDeductionNote = "Eligible for 80G tax deduction under Income Tax Act, 1961"

// SurfaceState is the donation surface lifecycle.
type SurfaceState string

const (
	SurfaceIdle       SurfaceState = "idle"
	SurfaceProcessing SurfaceState = "processing"
	SurfaceSuccess    SurfaceState = "success"
)

// DonationOutcome is what the surface displays.
type DonationOutcome struct {
	State         SurfaceState `json:"state"`
	Amount        int64        `json:"amount,omitempty"`
	Target        string       `json:"target,omitempty"`
	ImpactText    string       `json:"impact,omitempty"`
	Anonymous     bool         `json:"anonymous"`
	AnonymityNote string       `json:"anonymityNote,omitempty"`
}

// AnonymityNote is shown after an anonymous donation.
const AnonymityNote = "Donated anonymously"

// DonationRequest is the body for POST /v1/views/{viewId}/donations.
type DonationRequest struct {
	Amount    int64  `json:"amount" validate:"required,min=100,max=25000"`
	Target    string `json:"target"`
	Anonymous bool   `json:"anonymous"`
}
