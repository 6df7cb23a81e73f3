package domain

// ============================================================
// Account / Session: Request / Response types
// ============================================================

// MaxImpactScore caps Account.ImpactScore.
const MaxImpactScore = 100

// Account is the signed-in donor of a session.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	GovernmentID string `json:"governmentId"`
	TotalDonated int64  `json:"totalDonated"`
	ImpactScore  int    `json:"impactScore"`
}

// LoginRequest is the body for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the body for POST /v1/auth/signup.
type SignupRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	GovernmentID string `json:"governmentId" validate:"required"`
}

// SessionResponse is returned by login and signup.
type SessionResponse struct {
	AccessToken string   `json:"accessToken"`
	ExpiresIn   int      `json:"expiresIn"`
	Account     *Account `json:"account"`
}

// ProfileResponse is returned by GET /v1/profile.
type ProfileResponse struct {
	Account   *Account       `json:"account"`
	Donations []UserDonation `json:"donations"`
	// HistoryTotal sums the fixture history; it is not reconciled with
	// Account.TotalDonated.
	HistoryTotal int64 `json:"historyTotal"`
}

// ComparisonEntry is one column of the bookmark comparison.
type ComparisonEntry struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	TrustScore      int             `json:"trustScore"`
	TrustTier       string          `json:"trustTier"`
	TotalRaised     int64           `json:"totalRaised"`
	ProjectsFunded  int             `json:"projectsFunded"`
	TotalDonors     int64           `json:"totalDonors"`
	FundUtilization FundUtilization `json:"fundUtilization"`
}
