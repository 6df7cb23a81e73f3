// Package domain defines the core entities of the donor transparency BFA.
// These models are independent of transport and storage and represent the
// canonical data structures used throughout the service.
package domain

// ============================================================
// Organizations (catalog)
// ============================================================

// Organization is a verified non-profit listed in the catalog.
type Organization struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Location        string          `json:"location"`
	City            string          `json:"city"`
	TrustScore      int             `json:"trustScore"`
	Description     string          `json:"description"`
	TotalRaised     int64           `json:"totalRaised"`
	ProjectsFunded  int             `json:"projectsFunded"`
	Image           string          `json:"image"`
	Verified        bool            `json:"verified"`
	VerificationID  string          `json:"verificationId"`
	EstablishedDate string          `json:"establishedDate"`
	TotalDonors     int64           `json:"totalDonors"`
	Address         Address         `json:"address"`
	Projects        []Project       `json:"projects"`
	FundUtilization FundUtilization `json:"fundUtilization"`
	ImpactMetrics   []ImpactMetric  `json:"impactMetrics"`
}

// Project is a fundable initiative of an organization.
type Project struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FundAllocated int64  `json:"fundAllocated"`
	FundUtilized  int64  `json:"fundUtilized"`
}

// Address is the registered office of an organization.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// FundUtilization is the percentage split of spending.
type FundUtilization struct {
	Programs    int `json:"programs"`
	Admin       int `json:"admin"`
	Fundraising int `json:"fundraising"`
}

// ImpactMetric is a headline figure shown on the organization page.
type ImpactMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProjectName returns the display name of the given project id.
func (o *Organization) ProjectName(projectID string) (string, bool) {
	for _, p := range o.Projects {
		if p.ID == projectID {
			return p.Name, true
		}
	}
	return "", false
}

// FullAddress joins the address parts in display order.
func (o *Organization) FullAddress() string {
	a := o.Address
	return a.Street + ", " + a.City + ", " + a.Region + ", " + a.Country
}

// CatalogFilter narrows a catalog listing. "All" or "" disables a facet.
type CatalogFilter struct {
	Search   string
	Category string
	City     string
}

// CatalogFacets lists the selectable filter values.
type CatalogFacets struct {
	Categories []string `json:"categories"`
	Cities     []string `json:"cities"`
}

// Trust tiers, derived from the trust score.
const (
	TrustTierExcellent = "excellent"
	TrustTierHigh      = "high"
	TrustTierGood      = "good"
	TrustTierFair      = "fair"
)

// TrustTier maps a trust score to its badge tier.
func TrustTier(score int) string {
	switch {
	case score >= 95:
		return TrustTierExcellent
	case score >= 85:
		return TrustTierHigh
	case score >= 70:
		return TrustTierGood
	default:
		return TrustTierFair
	}
}

// OrganizationSummary is the catalog card view of an organization.
type OrganizationSummary struct {
	*Organization
	TrustTier   string `json:"trustTier"`
	TrustBadge  bool   `json:"trustBadge"`
	AddressLine string `json:"addressLine"`
}

// Summarize decorates an organization with derived display fields.
func Summarize(o *Organization) *OrganizationSummary {
	return &OrganizationSummary{
		Organization: o,
		TrustTier:    TrustTier(o.TrustScore),
		TrustBadge:   o.TrustScore >= 95,
		AddressLine:  o.FullAddress(),
	}
}

// ============================================================
// Transparency artifacts
// ============================================================

// ImpactReport is the quarterly AI impact report of an organization.
type ImpactReport struct {
	NGOID            string               `json:"ngoId"`
	NGOName          string               `json:"ngoName"`
	Summary          string               `json:"summary"`
	ImpactScore      int                  `json:"impactScore"`
	ScoreRating      string               `json:"scoreRating"`
	ScoreExplanation string               `json:"scoreExplanation"`
	FundUtilization  FundUtilization      `json:"fundUtilization"`
	Projects         []ProjectUtilization `json:"projects"`
	TotalAllocated   int64                `json:"totalAllocated"`
	TotalUtilized    int64                `json:"totalUtilized"`
	QuarterlyTrend   []QuarterlyImpact    `json:"quarterlyTrend"`
}

// ProjectUtilization is one project's share of the report.
type ProjectUtilization struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	FundAllocated   int64  `json:"fundAllocated"`
	FundUtilized    int64  `json:"fundUtilized"`
	UtilizedPercent int    `json:"utilizedPercent"`
}

// QuarterlyImpact is one bar of the quarterly trend chart.
type QuarterlyImpact struct {
	Quarter   string `json:"quarter"`
	Impact    int    `json:"impact"`
	Donations int64  `json:"donations"`
}

// Impact score ratings.
const (
	ScoreRatingExcellent = "excellent"
	ScoreRatingGood      = "good"
	ScoreRatingAttention = "needs-attention"
)

// RateImpactScore returns the rating of a report score and its explanation.
func RateImpactScore(score int) (rating, explanation string) {
	switch {
	case score >= 90:
		return ScoreRatingExcellent, "Excellent transparency and impact metrics. This NGO consistently exceeds industry benchmarks."
	case score >= 75:
		return ScoreRatingGood, "Good performance with room for improvement in certain areas."
	default:
		return ScoreRatingAttention, "Needs attention. Some metrics are below expected standards."
	}
}

// TimelineEvent is one phase of the donation-to-impact timeline.
type TimelineEvent struct {
	ID          string `json:"id"`
	Phase       int    `json:"phase"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"` // completed, active, pending
	Date        string `json:"date"`
	Icon        string `json:"icon"`
}

// ProofItem is a geotagged proof-of-work photo.
type ProofItem struct {
	ID             string `json:"id"`
	ImageURL       string `json:"imageUrl"`
	GPSCoordinates string `json:"gpsCoordinates"`
	Timestamp      string `json:"timestamp"`
	Caption        string `json:"caption"`
	Location       string `json:"location"`
}

// TickerStats are the platform-wide headline numbers.
type TickerStats struct {
	TotalVerifiedImpact int64 `json:"totalVerifiedImpact"`
	ProjectsFunded      int64 `json:"projectsFunded"`
	CarbonOffset        int64 `json:"carbonOffset"`
	LivesImpacted       int64 `json:"livesImpacted"`
	VolunteersActive    int64 `json:"volunteersActive"`
}

// TickerItem is a formatted ticker entry.
type TickerItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// UserDonation is a past donation shown on the profile page.
type UserDonation struct {
	ID                string `json:"id"`
	NGOName           string `json:"ngoName"`
	Amount            int64  `json:"amount"`
	Date              string `json:"date"`
	ImpactDescription string `json:"impactDescription"`
}
