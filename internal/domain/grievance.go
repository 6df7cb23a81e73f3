package domain

import "time"

// GrievanceCategories is the closed set of report categories.
var GrievanceCategories = []string{
	"Fund Misuse",
	"Incorrect Information",
	"Lack of Transparency",
	"Poor Communication",
	"Project Delays",
	"Other",
}

// ValidGrievanceCategory reports whether c is a known report category.
func ValidGrievanceCategory(c string) bool {
	for _, g := range GrievanceCategories {
		if g == c {
			return true
		}
	}
	return false
}

// GrievanceRequest is the body for POST /v1/ngos/{ngoId}/grievances.
type GrievanceRequest struct {
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required,max=2000"`
}

// Grievance is a filed report against an organization.
type Grievance struct {
	ID          string    `json:"id"`
	NGOID       string    `json:"ngoId"`
	NGOName     string    `json:"ngoName"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
