// Package groundwater tracks seasonal depth-to-water measurements and
// derives decline trends, depth categories, and recharge estimates.
package groundwater

import (
	"sort"
	"sync"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

// DefaultTrendYears is the window for decline-trend detection.
const DefaultTrendYears = 3

// Monitor holds the groundwater time series. Records are append-only
// for the life of the process. Safe for concurrent use.
type Monitor struct {
	mu      sync.RWMutex
	records []models.GroundwaterLevel
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) Add(record models.GroundwaterLevel) {
	m.mu.Lock()
	m.records = append(m.records, record)
	m.mu.Unlock()
}

// ByPanchayat returns records sorted by year, then season label.
// Season ordering is lexical ("monsoon" < "post_monsoon" <
// "pre_monsoon" < "winter"), matching the upstream data convention,
// not the calendar.
func (m *Monitor) ByPanchayat(panchayatID string) []models.GroundwaterLevel {
	m.mu.RLock()
	var out []models.GroundwaterLevel
	for _, r := range m.records {
		if r.PanchayatID == panchayatID {
			out = append(out, r)
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Season < out[j].Season
	})
	return out
}

// Latest is the last record in ByPanchayat order, which may not be the
// most recent calendar season within its year.
func (m *Monitor) Latest(panchayatID string) (models.GroundwaterLevel, bool) {
	records := m.ByPanchayat(panchayatID)
	if len(records) == 0 {
		return models.GroundwaterLevel{}, false
	}
	return records[len(records)-1], true
}

// DecliningTrend reports whether the last `years` pre-monsoon depths
// worsened strictly year over year. Fewer than two qualifying points is
// never a trend.
func (m *Monitor) DecliningTrend(panchayatID string, years int) bool {
	m.mu.RLock()
	var records []models.GroundwaterLevel
	for _, r := range m.records {
		if r.PanchayatID == panchayatID && r.Season == models.SeasonPreMonsoon {
			records = append(records, r)
		}
	}
	m.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		return records[i].Year < records[j].Year
	})
	if len(records) > years {
		records = records[len(records)-years:]
	}
	if len(records) < 2 {
		return false
	}
	for i := 1; i < len(records); i++ {
		if records[i].DepthMeters <= records[i-1].DepthMeters {
			return false
		}
	}
	return true
}

// CategorizeLevel buckets a depth per CGWB bands.
func CategorizeLevel(depthMeters float64) string {
	switch {
	case depthMeters < 2:
		return "very_shallow"
	case depthMeters < 8:
		return "shallow"
	case depthMeters < 20:
		return "moderate"
	case depthMeters < 40:
		return "deep"
	default:
		return "very_deep"
	}
}

// RechargePotential estimates monsoon recovery from the latest
// pre-monsoon and post-monsoon records. Both must exist and belong to
// the same year; otherwise the data is insufficient.
func (m *Monitor) RechargePotential(panchayatID string) string {
	m.mu.RLock()
	var latestPre, latestPost models.GroundwaterLevel
	var havePre, havePost bool
	for _, r := range m.records {
		if r.PanchayatID != panchayatID {
			continue
		}
		switch r.Season {
		case models.SeasonPreMonsoon:
			if !havePre || r.Year > latestPre.Year {
				latestPre = r
				havePre = true
			}
		case models.SeasonPostMonsoon:
			if !havePost || r.Year > latestPost.Year {
				latestPost = r
				havePost = true
			}
		}
	}
	m.mu.RUnlock()

	if !havePre || !havePost || latestPre.Year != latestPost.Year {
		return "insufficient_data"
	}
	recovery := latestPre.DepthMeters - latestPost.DepthMeters
	switch {
	case recovery > 5:
		return "high"
	case recovery > 2:
		return "moderate"
	case recovery > 0:
		return "low"
	default:
		return "negligible"
	}
}
