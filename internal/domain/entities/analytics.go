package entities

// PortfolioAnalytics aggregates a hoster's whole contract portfolio.
//
// OccupancyRate is a percentage: active contracts over total, 0 when the
// portfolio is empty.
type PortfolioAnalytics struct {
	TotalContracts      int                    `json:"totalContracts"`
	ActiveContracts     int                    `json:"activeContracts"`
	TotalRentCollected  float64                `json:"totalRentCollected"`
	AverageRent         float64                `json:"averageRent"`
	OccupancyRate       float64                `json:"occupancyRate"`
	ByStatus            map[ContractStatus]int `json:"byStatus"`
	ExpiringWithin30Day int                    `json:"expiringWithin30Days"`
	WithOverduePayments int                    `json:"withOverduePayments"`
}
