// Package alerts converts quality, groundwater, supply, and rainfall
// findings into leveled WaterAlerts. Each check re-derives its
// classification instead of trusting caller-supplied grades.
package alerts

import (
	"fmt"
	"sync/atomic"

	"github.com/invincible-jha/aumai-jaldrishti/internal/coverage"
	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
	"github.com/invincible-jha/aumai-jaldrishti/internal/quality"
)

// Alerting thresholds. The rainfall bands deliberately differ from the
// risk classifier's severe/high bands: alerts fire earlier on drought
// and only on high-band flood excess.
const (
	groundwaterCriticalDepth = 40.0
	groundwaterWarningDepth  = 20.0
	groundwaterDropAlert     = 2.0
	scarcityLPCD             = 27.0
	droughtAlertDeviation    = -40.0
	floodAlertDeviation      = 60.0
)

// Engine issues sequential alert IDs scoped to its own lifetime. IDs
// are not unique across engine instances or restarts.
type Engine struct {
	counter  atomic.Int64
	analyzer *quality.Analyzer
}

func NewEngine() *Engine {
	return &Engine{
		analyzer: quality.NewAnalyzer(),
	}
}

func (e *Engine) nextID() string {
	return fmt.Sprintf("ALERT-%04d", e.counter.Add(1))
}

// CheckQuality grades the report and emits one alert for hazardous or
// contaminated water. Safe and acceptable water is silent.
func (e *Engine) CheckQuality(report *models.WaterQualityReport) []models.WaterAlert {
	var out []models.WaterAlert
	switch e.analyzer.Grade(report) {
	case models.GradeHazardous:
		out = append(out, models.WaterAlert{
			AlertID:  e.nextID(),
			Level:    models.AlertLevelEmergency,
			Category: "water_quality",
			Message:  fmt.Sprintf("HAZARDOUS water quality at source %s. Do NOT consume.", report.SourceID),
			SourceID: report.SourceID,
			Date:     report.TestDate,
			IsActive: true,
		})
	case models.GradeContaminated:
		out = append(out, models.WaterAlert{
			AlertID:  e.nextID(),
			Level:    models.AlertLevelWarning,
			Category: "water_quality",
			Message:  fmt.Sprintf("Contaminated water at source %s. Treatment required.", report.SourceID),
			SourceID: report.SourceID,
			Date:     report.TestDate,
			IsActive: true,
		})
	}
	return out
}

// CheckGroundwater emits at most one depth alert plus an independent
// trend alert when the table dropped more than 2m year over year, so a
// single record can produce two alerts.
func (e *Engine) CheckGroundwater(record *models.GroundwaterLevel) []models.WaterAlert {
	var out []models.WaterAlert
	if record.DepthMeters > groundwaterCriticalDepth {
		out = append(out, models.WaterAlert{
			AlertID:     e.nextID(),
			PanchayatID: record.PanchayatID,
			Level:       models.AlertLevelCritical,
			Category:    "groundwater",
			Message:     fmt.Sprintf("Groundwater critically deep: %gm. Immediate conservation needed.", record.DepthMeters),
			IsActive:    true,
		})
	} else if record.DepthMeters > groundwaterWarningDepth {
		out = append(out, models.WaterAlert{
			AlertID:     e.nextID(),
			PanchayatID: record.PanchayatID,
			Level:       models.AlertLevelWarning,
			Category:    "groundwater",
			Message:     fmt.Sprintf("Groundwater declining: %gm depth.", record.DepthMeters),
			IsActive:    true,
		})
	}
	if record.IsDeclining() && record.ChangeMeters() > groundwaterDropAlert {
		out = append(out, models.WaterAlert{
			AlertID:     e.nextID(),
			PanchayatID: record.PanchayatID,
			Level:       models.AlertLevelWarning,
			Category:    "groundwater_trend",
			Message:     fmt.Sprintf("Groundwater dropped %gm from last year.", record.ChangeMeters()),
			IsActive:    true,
		})
	}
	return out
}

// CheckSupply compares per-capita supply to the JJM norm. Below half
// the norm is an emergency. A zero population is silent.
func (e *Engine) CheckSupply(population int, totalSupplyLPD float64) []models.WaterAlert {
	var out []models.WaterAlert
	if population == 0 {
		return out
	}
	lpcd := totalSupplyLPD / float64(population)
	if lpcd < scarcityLPCD {
		out = append(out, models.WaterAlert{
			AlertID:  e.nextID(),
			Level:    models.AlertLevelEmergency,
			Category: "supply",
			Message:  fmt.Sprintf("Severe water scarcity: only %.0f LPCD (need %d).", lpcd, coverage.JJMLPCDStandard),
			IsActive: true,
		})
	} else if lpcd < coverage.JJMLPCDStandard {
		out = append(out, models.WaterAlert{
			AlertID:  e.nextID(),
			Level:    models.AlertLevelWarning,
			Category: "supply",
			Message:  fmt.Sprintf("Water supply below JJM standard: %.0f LPCD (need %d).", lpcd, coverage.JJMLPCDStandard),
			IsActive: true,
		})
	}
	return out
}

// CheckRainfall emits a critical alert for deviations at or beyond the
// drought/flood alert bands.
func (e *Engine) CheckRainfall(panchayatID string, deviationPct float64) []models.WaterAlert {
	var out []models.WaterAlert
	if deviationPct <= droughtAlertDeviation {
		out = append(out, models.WaterAlert{
			AlertID:     e.nextID(),
			PanchayatID: panchayatID,
			Level:       models.AlertLevelCritical,
			Category:    "drought",
			Message:     fmt.Sprintf("Drought conditions: rainfall %.0f%% below normal.", -deviationPct),
			IsActive:    true,
		})
	} else if deviationPct >= floodAlertDeviation {
		out = append(out, models.WaterAlert{
			AlertID:     e.nextID(),
			PanchayatID: panchayatID,
			Level:       models.AlertLevelCritical,
			Category:    "flood",
			Message:     fmt.Sprintf("Flood risk: rainfall %.0f%% above normal.", deviationPct),
			IsActive:    true,
		})
	}
	return out
}
