// Package rainfall classifies drought and flood risk from monthly
// rainfall-versus-normal records, following IMD deviation bands.
package rainfall

import (
	"math"
	"sync"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

// MonsoonResult summarizes June-September performance.
type MonsoonResult struct {
	ActualMM     float64 `json:"actual_mm"`
	NormalMM     float64 `json:"normal_mm"`
	DeviationPct float64 `json:"deviation_pct"`
}

// Analyzer holds the rainfall time series. Records are append-only for
// the life of the process. Safe for concurrent use.
type Analyzer struct {
	mu      sync.RWMutex
	records []models.RainfallRecord
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Add(record models.RainfallRecord) {
	a.mu.Lock()
	a.records = append(a.records, record)
	a.mu.Unlock()
}

func (a *Analyzer) AnnualTotal(panchayatID string, year int) float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var total float64
	for _, r := range a.records {
		if r.PanchayatID == panchayatID && r.Year == year {
			total += r.RainfallMM
		}
	}
	return total
}

func (a *Analyzer) AnnualNormal(panchayatID string, year int) float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var total float64
	for _, r := range a.records {
		if r.PanchayatID == panchayatID && r.Year == year {
			total += r.NormalMM
		}
	}
	return total
}

// AnnualDeviationPct is the departure from normal for the year, 0 when
// no normal is on record.
func (a *Analyzer) AnnualDeviationPct(panchayatID string, year int) float64 {
	normal := a.AnnualNormal(panchayatID, year)
	if normal == 0 {
		return 0
	}
	actual := a.AnnualTotal(panchayatID, year)
	return round1((actual - normal) / normal * 100)
}

// DroughtRisk applies IMD deficiency bands to the annual deviation.
func (a *Analyzer) DroughtRisk(panchayatID string, year int) string {
	dev := a.AnnualDeviationPct(panchayatID, year)
	switch {
	case dev <= -60:
		return "severe_drought"
	case dev <= -40:
		return "moderate_drought"
	case dev <= -20:
		return "mild_drought"
	default:
		return "normal"
	}
}

// FloodRisk classifies excess rainfall.
func (a *Analyzer) FloodRisk(panchayatID string, year int) string {
	dev := a.AnnualDeviationPct(panchayatID, year)
	switch {
	case dev >= 60:
		return "high_flood_risk"
	case dev >= 30:
		return "moderate_flood_risk"
	default:
		return "normal"
	}
}

// MonsoonPerformance sums June-September rainfall against normal.
func (a *Analyzer) MonsoonPerformance(panchayatID string, year int) MonsoonResult {
	a.mu.RLock()
	var actual, normal float64
	for _, r := range a.records {
		if r.PanchayatID == panchayatID && r.Year == year && r.Month >= 6 && r.Month <= 9 {
			actual += r.RainfallMM
			normal += r.NormalMM
		}
	}
	a.mu.RUnlock()

	var deviation float64
	if normal > 0 {
		deviation = (actual - normal) / normal * 100
	}
	return MonsoonResult{
		ActualMM:     round1(actual),
		NormalMM:     round1(normal),
		DeviationPct: round1(deviation),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
