package memstore

import "github.com/boddenberg/donor-bfa-go/internal/domain"

// ============================================================
// Static fixtures
// ============================================================

var organizations = []domain.Organization{
	{
		ID:              "ngo-1",
		Name:            "Green Earth Initiative",
		Category:        "Environment",
		Location:        "Mumbai, India",
		City:            "Mumbai",
		TrustScore:      98,
		Description:     "Pioneering sustainable forestry and urban greening projects across India. We plant trees, restore ecosystems, and empower local communities.",
		TotalRaised:     24500000,
		ProjectsFunded:  45,
		Image:           "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800",
		Verified:        true,
		VerificationID:  "12AAAT1234G1FL1",
		EstablishedDate: "2015-03-21",
		TotalDonors:     12450,
		Address:         domain.Address{Street: "42, Linking Road, Bandra West", City: "Mumbai", Region: "Maharashtra", Country: "India"},
		Projects: []domain.Project{
			{ID: "proj-1", Name: "Urban Tree Plantation", FundAllocated: 5000000, FundUtilized: 4200000},
			{ID: "proj-2", Name: "Solar Village Initiative", FundAllocated: 3500000, FundUtilized: 2800000},
			{ID: "proj-3", Name: "River Cleanup Drive", FundAllocated: 2000000, FundUtilized: 1850000},
			{ID: "proj-4", Name: "Eco-Education Program", FundAllocated: 1500000, FundUtilized: 900000},
		},
		FundUtilization: domain.FundUtilization{Programs: 78, Admin: 12, Fundraising: 10},
		ImpactMetrics: []domain.ImpactMetric{
			{Label: "Trees Planted", Value: "125,000"},
			{Label: "CO₂ Offset", Value: "3,200 tons"},
			{Label: "Villages Reached", Value: "89"},
		},
	},
	{
		ID:              "ngo-2",
		Name:            "Bright Futures Foundation",
		Category:        "Education",
		Location:        "Bangalore, India",
		City:            "Bangalore",
		TrustScore:      96,
		Description:     "Providing quality education and school supplies to underprivileged children across India. Every child deserves a chance to learn.",
		TotalRaised:     18900000,
		ProjectsFunded:  78,
		Image:           "https://images.unsplash.com/photo-1497486751825-1233686d5d80?w=800",
		Verified:        true,
		VerificationID:  "12AABF5678H1FL2",
		EstablishedDate: "2012-08-15",
		TotalDonors:     8930,
		Address:         domain.Address{Street: "156, MG Road, Indiranagar", City: "Bangalore", Region: "Karnataka", Country: "India"},
		Projects: []domain.Project{
			{ID: "proj-5", Name: "Digital Literacy Program", FundAllocated: 4000000, FundUtilized: 3600000},
			{ID: "proj-6", Name: "Mid-Day Meals Initiative", FundAllocated: 6000000, FundUtilized: 5700000},
			{ID: "proj-7", Name: "Girl Child Education", FundAllocated: 3000000, FundUtilized: 2100000},
			{ID: "proj-8", Name: "Skill Development Workshops", FundAllocated: 2500000, FundUtilized: 1250000},
		},
		FundUtilization: domain.FundUtilization{Programs: 82, Admin: 10, Fundraising: 8},
		ImpactMetrics: []domain.ImpactMetric{
			{Label: "Students Supported", Value: "12,500"},
			{Label: "Schools Built", Value: "23"},
			{Label: "Teachers Trained", Value: "450"},
		},
	},
	{
		ID:              "ngo-3",
		Name:            "Clean Water Alliance",
		Category:        "Humanitarian",
		Location:        "Chennai, India",
		City:            "Chennai",
		TrustScore:      97,
		Description:     "Installing water purification systems and wells in communities lacking access to clean drinking water across South India.",
		TotalRaised:     32000000,
		ProjectsFunded:  156,
		Image:           "https://images.unsplash.com/photo-1541675154750-0444c7d51e8e?w=800",
		Verified:        true,
		VerificationID:  "12AACW9012I1FL3",
		EstablishedDate: "2010-06-05",
		TotalDonors:     15670,
		Address:         domain.Address{Street: "78, Anna Salai, T. Nagar", City: "Chennai", Region: "Tamil Nadu", Country: "India"},
		Projects: []domain.Project{
			{ID: "proj-9", Name: "Village Well Construction", FundAllocated: 8000000, FundUtilized: 7200000},
			{ID: "proj-10", Name: "RO Plant Installation", FundAllocated: 6500000, FundUtilized: 5200000},
			{ID: "proj-11", Name: "Rainwater Harvesting", FundAllocated: 3000000, FundUtilized: 2550000},
			{ID: "proj-12", Name: "Water Quality Testing", FundAllocated: 1500000, FundUtilized: 1400000},
		},
		FundUtilization: domain.FundUtilization{Programs: 85, Admin: 8, Fundraising: 7},
		ImpactMetrics: []domain.ImpactMetric{
			{Label: "Wells Installed", Value: "340"},
			{Label: "People Served", Value: "450,000"},
			{Label: "Communities", Value: "120"},
		},
	},
	{
		ID:              "ngo-4",
		Name:            "Wildlife Guardians",
		Category:        "Wildlife",
		Location:        "Jaipur, India",
		City:            "Jaipur",
		TrustScore:      95,
		Description:     "Protecting endangered species through anti-poaching patrols, habitat restoration, and community education programs across Rajasthan.",
		TotalRaised:     15600000,
		ProjectsFunded:  34,
		Image:           "https://images.unsplash.com/photo-1474511320723-9a56873571b7?w=800",
		Verified:        true,
		VerificationID:  "12AAWG3456J1FL4",
		EstablishedDate: "2014-01-26",
		TotalDonors:     6890,
		Address:         domain.Address{Street: "23, MI Road, Civil Lines", City: "Jaipur", Region: "Rajasthan", Country: "India"},
		Projects: []domain.Project{
			{ID: "proj-13", Name: "Tiger Conservation", FundAllocated: 2800000, FundUtilized: 2380000},
			{ID: "proj-14", Name: "Anti-Poaching Patrols", FundAllocated: 1800000, FundUtilized: 1620000},
			{ID: "proj-15", Name: "Wildlife Corridor Restoration", FundAllocated: 2200000, FundUtilized: 1100000},
			{ID: "proj-16", Name: "Community Awareness Camps", FundAllocated: 900000, FundUtilized: 810000},
		},
		FundUtilization: domain.FundUtilization{Programs: 76, Admin: 14, Fundraising: 10},
		ImpactMetrics: []domain.ImpactMetric{
			{Label: "Animals Protected", Value: "8,500"},
			{Label: "Rangers Deployed", Value: "120"},
			{Label: "Hectares Patrolled", Value: "50,000"},
		},
	},
	{
		ID:              "ngo-5",
		Name:            "HealthBridge India",
		Category:        "Healthcare",
		Location:        "Delhi, India",
		City:            "Delhi",
		TrustScore:      99,
		Description:     "Delivering essential medical care and health education to remote communities across North India and the Himalayan regions.",
		TotalRaised:     41000000,
		ProjectsFunded:  89,
		Image:           "https://images.unsplash.com/photo-1576091160550-2173dba999ef?w=800",
		Verified:        true,
		VerificationID:  "12AAHB7890K1FL5",
		EstablishedDate: "2008-11-14",
		TotalDonors:     23450,
		Address:         domain.Address{Street: "89, Connaught Place, Block C", City: "New Delhi", Region: "Delhi", Country: "India"},
		Projects: []domain.Project{
			{ID: "proj-17", Name: "Mobile Health Clinics", FundAllocated: 7000000, FundUtilized: 6300000},
			{ID: "proj-18", Name: "Maternal Care Program", FundAllocated: 5000000, FundUtilized: 4750000},
			{ID: "proj-19", Name: "Vaccination Drives", FundAllocated: 4500000, FundUtilized: 3150000},
			{ID: "proj-20", Name: "Mental Health Awareness", FundAllocated: 2000000, FundUtilized: 1200000},
		},
		FundUtilization: domain.FundUtilization{Programs: 88, Admin: 7, Fundraising: 5},
		ImpactMetrics: []domain.ImpactMetric{
			{Label: "Patients Treated", Value: "78,000"},
			{Label: "Medical Camps", Value: "320"},
			{Label: "Vaccines Given", Value: "125,000"},
		},
	},
	{
		ID:              "ngo-6",
		Name:            "Solar Hope Project",
		Category:        "Environment",
		Location:        "Hyderabad, India",
		City:            "Hyderabad",
		TrustScore:      94,
		Description:     "Bringing renewable energy to off-grid villages through solar panel installations and energy education across Telangana and Andhra Pradesh.",
		TotalRaised:     9800000,
		ProjectsFunded:  42,
		Image:           "https://images.unsplash.com/photo-1509391366360-2e959784a276?w=800",
		Verified:        true,
		VerificationID:  "12AASH1234L1FL6",
		EstablishedDate: "2017-04-22",
		TotalDonors:     4560,
		Address:         domain.Address{Street: "112, Jubilee Hills, Road No. 36", City: "Hyderabad", Region: "Telangana", Country: "India"},
		Projects: []domain.Project{
			{ID: "proj-21", Name: "Solar Home Systems", FundAllocated: 3600000, FundUtilized: 3060000},
			{ID: "proj-22", Name: "Solar Street Lighting", FundAllocated: 2400000, FundUtilized: 2160000},
			{ID: "proj-23", Name: "Solar Water Pumps", FundAllocated: 3000000, FundUtilized: 2100000},
			{ID: "proj-24", Name: "Green Energy Education", FundAllocated: 1200000, FundUtilized: 600000},
		},
		FundUtilization: domain.FundUtilization{Programs: 80, Admin: 11, Fundraising: 9},
		ImpactMetrics: []domain.ImpactMetric{
			{Label: "Solar Panels", Value: "5,200"},
			{Label: "Homes Powered", Value: "3,400"},
			{Label: "Schools Lit", Value: "89"},
		},
	},
}

// seedTransactions is the shared ledger fixture every detail view starts from.
var seedTransactions = []domain.TransactionRecord{
	{ID: "tx-1", Date: "2025-12-15", Description: "Solar Lamp Purchase (50 units)", Amount: 25000, Category: domain.CategoryProgram, ReceiptID: "RCP-2025-001", NGOID: "ngo-1"},
	{ID: "tx-2", Date: "2025-12-14", Description: "Staff Training Workshop", Amount: 12000, Category: domain.CategoryAdmin, ReceiptID: "RCP-2025-002", NGOID: "ngo-1"},
	{ID: "tx-3", Date: "2025-12-13", Description: "Tree Saplings (500 units)", Amount: 15000, Category: domain.CategoryProgram, ReceiptID: "RCP-2025-003", NGOID: "ngo-1"},
	{ID: "tx-4", Date: "2025-12-12", Description: "Transportation & Logistics", Amount: 8000, Category: domain.CategoryOperations, ReceiptID: "RCP-2025-004", NGOID: "ngo-1"},
	{ID: "tx-5", Date: "2025-12-11", Description: "Water Filtration Systems (10)", Amount: 45000, Category: domain.CategoryProgram, ReceiptID: "RCP-2025-005", NGOID: "ngo-1"},
	{ID: "tx-6", Date: "2025-12-10", Description: "Office Supplies", Amount: 3500, Category: domain.CategoryAdmin, ReceiptID: "RCP-2025-006", NGOID: "ngo-1"},
	{ID: "tx-7", Date: "2026-01-09", Description: "Community Workshop Materials", Amount: 6000, Category: domain.CategoryProgram, ReceiptID: "RCP-2026-007", NGOID: "ngo-1"},
	{ID: "tx-8", Date: "2026-01-08", Description: "Field Equipment Purchase", Amount: 18000, Category: domain.CategoryOperations, ReceiptID: "RCP-2026-008", NGOID: "ngo-1"},
	{ID: "tx-9", Date: "2026-01-07", Description: "Educational Materials (200 kits)", Amount: 32000, Category: domain.CategoryProgram, ReceiptID: "RCP-2026-009", NGOID: "ngo-1"},
	{ID: "tx-10", Date: "2026-01-06", Description: "Monthly Audit Services", Amount: 7500, Category: domain.CategoryAdmin, ReceiptID: "RCP-2026-010", NGOID: "ngo-1"},
}

var timelineEvents = []domain.TimelineEvent{
	{ID: "phase-1", Phase: 1, Title: "Funds Received", Description: "Your donation has been securely received and logged in the project wallet.", Status: "completed", Date: "2026-01-05 09:23 AM", Icon: "Wallet"},
	{ID: "phase-2", Phase: 2, Title: "Allocation Complete", Description: "Funds allocated to purchase 5 Solar Lamps for rural households in Maharashtra.", Status: "completed", Date: "2026-01-05 02:15 PM", Icon: "Package"},
	{ID: "phase-3", Phase: 3, Title: "In-Field Execution", Description: "Local team deployed for distribution. Expected delivery to 5 households today.", Status: "active", Date: "2026-01-06 10:00 AM", Icon: "Truck"},
	{ID: "phase-4", Phase: 4, Title: "Impact Verified", Description: "Geotagged proof-of-work photos uploaded. Impact confirmed by field coordinator.", Status: "pending", Date: "Pending", Icon: "CheckCircle"},
}

var proofItems = []domain.ProofItem{
	{ID: "proof-1", ImageURL: "https://images.unsplash.com/photo-1532629345422-7515f3d16bb6?w=600", GPSCoordinates: "19.0760° N, 72.8777° E", Timestamp: "2026-01-04 11:23:45 IST", Caption: "Solar lamp installation at Patel household", Location: "Nashik District, Maharashtra"},
	{ID: "proof-2", ImageURL: "https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?w=600", GPSCoordinates: "19.0823° N, 72.8812° E", Timestamp: "2026-01-04 14:45:12 IST", Caption: "Children studying with new solar lighting", Location: "Ahmednagar, Maharashtra"},
	{ID: "proof-3", ImageURL: "https://images.unsplash.com/photo-1559027615-cd4628902d4a?w=600", GPSCoordinates: "19.0945° N, 72.8956° E", Timestamp: "2026-01-05 09:15:33 IST", Caption: "Tree planting ceremony with local volunteers", Location: "Pune Rural, Maharashtra"},
	{ID: "proof-4", ImageURL: "https://images.unsplash.com/photo-1593113598332-cd288d649433?w=600", GPSCoordinates: "19.1012° N, 72.9023° E", Timestamp: "2026-01-05 16:30:00 IST", Caption: "Water filter distribution event", Location: "Satara, Maharashtra"},
}

var userDonations = []domain.UserDonation{
	{ID: "ud-1", NGOName: "Green Earth Initiative", Amount: 12500, Date: "2026-01-05", ImpactDescription: "15 trees planted"},
	{ID: "ud-2", NGOName: "Bright Futures Foundation", Amount: 6250, Date: "2025-12-28", ImpactDescription: "3 school kits provided"},
	{ID: "ud-3", NGOName: "Clean Water Alliance", Amount: 16600, Date: "2025-12-15", ImpactDescription: "20 families served"},
	{ID: "ud-4", NGOName: "HealthBridge India", Amount: 8300, Date: "2025-11-20", ImpactDescription: "10 vaccines delivered"},
}

var tickerStats = domain.TickerStats{
	TotalVerifiedImpact: 1245000000,
	ProjectsFunded:      450,
	CarbonOffset:        12000,
	LivesImpacted:       890000,
	VolunteersActive:    2500,
}

var quarterlyImpact = []domain.QuarterlyImpact{
	{Quarter: "Q1 2025", Impact: 65, Donations: 45000000},
	{Quarter: "Q2 2025", Impact: 72, Donations: 52000000},
	{Quarter: "Q3 2025", Impact: 78, Donations: 61000000},
	{Quarter: "Q4 2025", Impact: 85, Donations: 74000000},
	{Quarter: "Q1 2026", Impact: 92, Donations: 82000000},
}

// impactNarrative is the quarterly summary shown on every organization's
// report. Paragraphs are separated by a blank line; **bold** and *italic*
// are markdown.
const impactNarrative = `This quarter, the organization demonstrated exceptional execution across all program areas. Key highlights include:

**Environmental Impact**: Successfully planted 12,500 trees across 15 districts, exceeding targets by 25%. Carbon sequestration efforts now offset an estimated 850 tons of CO₂ annually.

**Community Reach**: Engaged 45 villages in sustainable agriculture training, with 89% of participants reporting improved crop yields within 3 months.

**Financial Efficiency**: Maintained an impressive 92% program-to-overhead ratio, with 94 paise of every donated rupee directly funding field operations.

**Verification Status**: All activities have been independently verified through geotagged documentation and third-party audits.

*Report generated using verified on-ground data and blockchain-secured transaction records.*`
