// Package coverage tracks Jal Jeevan Mission tap-connection coverage
// per panchayat and checks per-capita supply against the JJM standard.
package coverage

import (
	"math"
	"sync"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

// JJMLPCDStandard is the Jal Jeevan Mission supply norm in liters per
// capita per day.
const JJMLPCDStandard = 55

// DefaultTargetPct is the coverage goal used when no explicit target is
// supplied.
const DefaultTargetPct = 100.0

// Summary holds mean coverage across all tracked panchayats. The
// functional mean skips panchayats with zero provided connections
// rather than counting them as 0.
type Summary struct {
	AvgCoveragePct   float64 `json:"avg_coverage_pct"`
	AvgFunctionalPct float64 `json:"avg_functional_pct"`
}

// LPCDResult reports per-capita supply against the JJM standard.
type LPCDResult struct {
	ActualLPCD   float64 `json:"actual_lpcd"`
	RequiredLPCD float64 `json:"required_lpcd"`
	GapLPD       float64 `json:"gap_lpd"`
}

// Tracker indexes FHTC status by panchayat ID, last write wins.
// Safe for concurrent use.
type Tracker struct {
	mu      sync.RWMutex
	records map[string]models.FHTCStatus
}

func NewTracker() *Tracker {
	return &Tracker{
		records: make(map[string]models.FHTCStatus),
	}
}

func (t *Tracker) Update(status models.FHTCStatus) {
	t.mu.Lock()
	t.records[status.PanchayatID] = status
	t.mu.Unlock()
}

func (t *Tracker) Get(panchayatID string) (models.FHTCStatus, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.records[panchayatID]
	return s, ok
}

func (t *Tracker) All() []models.FHTCStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.FHTCStatus, 0, len(t.records))
	for _, s := range t.records {
		out = append(out, s)
	}
	return out
}

func (t *Tracker) BelowTarget(targetPct float64) []models.FHTCStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []models.FHTCStatus
	for _, s := range t.records {
		if s.CoveragePct() < targetPct {
			out = append(out, s)
		}
	}
	return out
}

// DemandGap is the number of households still without a connection,
// never negative. Unknown panchayats report 0.
func (t *Tracker) DemandGap(panchayatID string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.records[panchayatID]
	if !ok {
		return 0
	}
	gap := s.TotalHouseholds - s.FHTCProvided
	if gap < 0 {
		return 0
	}
	return gap
}

func (t *Tracker) Summary() Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.records) == 0 {
		return Summary{}
	}
	var coverageSum float64
	var functionalSum float64
	functionalCount := 0
	for _, s := range t.records {
		coverageSum += s.CoveragePct()
		if s.FHTCProvided > 0 {
			functionalSum += s.FunctionalPct()
			functionalCount++
		}
	}
	summary := Summary{
		AvgCoveragePct: round1(coverageSum / float64(len(t.records))),
	}
	if functionalCount > 0 {
		summary.AvgFunctionalPct = round1(functionalSum / float64(functionalCount))
	}
	return summary
}

// LPCDCheck compares supply to the JJM 55 LPCD norm. A zero population
// returns zeros with the required standard still filled in.
func (t *Tracker) LPCDCheck(panchayatID string, population int, totalSupplyLPD float64) LPCDResult {
	if population == 0 {
		return LPCDResult{RequiredLPCD: JJMLPCDStandard}
	}
	requiredLPD := float64(population * JJMLPCDStandard)
	gap := requiredLPD - totalSupplyLPD
	if gap < 0 {
		gap = 0
	}
	return LPCDResult{
		ActualLPCD:   round1(totalSupplyLPD / float64(population)),
		RequiredLPCD: JJMLPCDStandard,
		GapLPD:       math.Round(gap),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
