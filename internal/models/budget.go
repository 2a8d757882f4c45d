package models

import "math"

// WaterBudget is a daily demand estimate for a panchayat. Supply is
// filled in by the caller after estimation.
type WaterBudget struct {
	PanchayatID          string  `json:"panchayat_id"`
	Year                 int     `json:"year"`
	TotalDemandLPD       float64 `json:"total_demand_lpd"`
	TotalSupplyLPD       float64 `json:"total_supply_lpd"`
	DomesticDemandLPD    float64 `json:"domestic_demand_lpd"`
	AgricultureDemandLPD float64 `json:"agriculture_demand_lpd"`
	IndustrialDemandLPD  float64 `json:"industrial_demand_lpd"`
}

// SurplusDeficitLPD is supply minus demand, rounded to whole liters.
func (b *WaterBudget) SurplusDeficitLPD() float64 {
	return math.Round(b.TotalSupplyLPD - b.TotalDemandLPD)
}

func (b *WaterBudget) IsDeficit() bool {
	return b.TotalSupplyLPD < b.TotalDemandLPD
}
