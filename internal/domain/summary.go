package domain

// MonthlySummary aggregates a vehicle's costs for one calendar month.
// All amounts are rounded to 2 decimals; TotalCost = FuelCost + MaintenanceCost.
type MonthlySummary struct {
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	FuelCost        float64 `json:"fuel_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	TotalCost       float64 `json:"total_cost"`
}
