// Package budget estimates daily water demand and scores supply
// sustainability for a panchayat.
package budget

import (
	"math"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

const (
	// DomesticLPCD is the JJM household norm per person.
	DomesticLPCD = 55
	// LivestockLPCD is daily demand per large animal equivalent.
	LivestockLPCD = 30
	// IrrigationMMPerHectare is average seasonal irrigation depth.
	IrrigationMMPerHectare = 500
)

type Planner struct{}

func NewPlanner() *Planner {
	return &Planner{}
}

// EstimateDemand converts population, livestock, and irrigated area
// into a daily demand budget. Irrigation demand is the seasonal depth
// converted to liters and spread over the year; livestock demand is
// folded into the agriculture figure.
func (p *Planner) EstimateDemand(population, livestock int, irrigatedHectares float64) models.WaterBudget {
	domestic := float64(population * DomesticLPCD)
	agriculture := irrigatedHectares * IrrigationMMPerHectare * 1000 / 365
	livestockDemand := float64(livestock * LivestockLPCD)
	return models.WaterBudget{
		TotalDemandLPD:       math.Round(domestic + agriculture + livestockDemand),
		DomesticDemandLPD:    math.Round(domestic),
		AgricultureDemandLPD: math.Round(agriculture + livestockDemand),
	}
}

// SustainabilityIndex scores supply against demand on a 0-100 scale,
// capped at 100. Zero demand is fully sustainable.
func (p *Planner) SustainabilityIndex(budget *models.WaterBudget) float64 {
	if budget.TotalDemandLPD == 0 {
		return 100
	}
	ratio := budget.TotalSupplyLPD / budget.TotalDemandLPD * 100
	if ratio > 100 {
		ratio = 100
	}
	return math.Round(ratio*10) / 10
}
