// Package quality grades water test reports against the BIS 10500:2012
// two-tier (acceptable/permissible) drinking water limits.
package quality

import (
	"fmt"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

// BIS 10500:2012 limits. Acceptable is the desirable bound, permissible
// the relaxed bound in the absence of an alternate source.
const (
	PHMin                = 6.5
	PHMax                = 8.5
	PHHazardousMin       = 5.0
	PHHazardousMax       = 9.5
	TDSAcceptable        = 500.0
	TDSPermissible       = 2000.0
	TurbidityAcceptable  = 1.0
	TurbidityPermissible = 5.0
	ChlorideAcceptable   = 250.0
	FluorideAcceptable   = 1.0
	FluoridePermissible  = 1.5
	ArsenicMaxPPB        = 10.0
	IronAcceptable       = 0.3
	IronPermissible      = 1.0
	NitrateMax           = 45.0
)

type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Grade classifies a report. Every parameter is evaluated; hazardous
// findings outrank contaminated ones, and coliform is always hazardous.
// SAFE additionally requires TDS, turbidity, fluoride, and iron to all
// sit at or below their acceptable bounds; anything else is ACCEPTABLE.
func (a *Analyzer) Grade(report *models.WaterQualityReport) models.QualityGrade {
	hazardous := false
	contaminated := false

	if report.PH < PHHazardousMin || report.PH > PHHazardousMax {
		hazardous = true
	} else if report.PH < PHMin || report.PH > PHMax {
		contaminated = true
	}

	if report.TDSPPM > TDSPermissible {
		hazardous = true
	} else if report.TDSPPM > TDSAcceptable {
		contaminated = true
	}

	if report.TurbidityNTU > TurbidityPermissible {
		contaminated = true
	}

	if report.FluoridePPM > FluoridePermissible {
		hazardous = true
	} else if report.FluoridePPM > FluorideAcceptable {
		contaminated = true
	}

	if report.ArsenicPPB > ArsenicMaxPPB {
		hazardous = true
	}

	if report.IronPPM > IronPermissible {
		contaminated = true
	}

	if report.NitratePPM > NitrateMax {
		hazardous = true
	}

	if report.ColiformPresent {
		hazardous = true
	}

	if hazardous {
		return models.GradeHazardous
	}
	if contaminated {
		return models.GradeContaminated
	}
	if report.TDSPPM <= TDSAcceptable &&
		report.TurbidityNTU <= TurbidityAcceptable &&
		report.FluoridePPM <= FluorideAcceptable &&
		report.IronPPM <= IronAcceptable {
		return models.GradeSafe
	}
	return models.GradeAcceptable
}

// IdentifyContaminants lists every parameter over its acceptable bound,
// in a fixed order. Chloride appears here even though it plays no part
// in grading.
func (a *Analyzer) IdentifyContaminants(report *models.WaterQualityReport) []string {
	var issues []string
	if report.PH < PHMin {
		issues = append(issues, fmt.Sprintf("pH too low: %g (min %g)", report.PH, PHMin))
	}
	if report.PH > PHMax {
		issues = append(issues, fmt.Sprintf("pH too high: %g (max %g)", report.PH, PHMax))
	}
	if report.TDSPPM > TDSAcceptable {
		issues = append(issues, fmt.Sprintf("TDS: %g ppm (limit %g)", report.TDSPPM, TDSAcceptable))
	}
	if report.TurbidityNTU > TurbidityAcceptable {
		issues = append(issues, fmt.Sprintf("Turbidity: %g NTU (limit %g)", report.TurbidityNTU, TurbidityAcceptable))
	}
	if report.FluoridePPM > FluorideAcceptable {
		issues = append(issues, fmt.Sprintf("Fluoride: %g ppm (limit %g)", report.FluoridePPM, FluorideAcceptable))
	}
	if report.ArsenicPPB > ArsenicMaxPPB {
		issues = append(issues, fmt.Sprintf("Arsenic: %g ppb (limit %g)", report.ArsenicPPB, ArsenicMaxPPB))
	}
	if report.IronPPM > IronAcceptable {
		issues = append(issues, fmt.Sprintf("Iron: %g ppm (limit %g)", report.IronPPM, IronAcceptable))
	}
	if report.NitratePPM > NitrateMax {
		issues = append(issues, fmt.Sprintf("Nitrate: %g ppm (limit %g)", report.NitratePPM, NitrateMax))
	}
	if report.ChloridePPM > ChlorideAcceptable {
		issues = append(issues, fmt.Sprintf("Chloride: %g ppm (limit %g)", report.ChloridePPM, ChlorideAcceptable))
	}
	if report.ColiformPresent {
		issues = append(issues, "Coliform bacteria detected")
	}
	return issues
}

// RecommendTreatment suggests one treatment per exceeded acceptable
// bound. Recommendations are independent, not mutually exclusive.
func (a *Analyzer) RecommendTreatment(report *models.WaterQualityReport) []string {
	var treatments []string
	if report.ColiformPresent {
		treatments = append(treatments, "Chlorination or UV disinfection for bacterial contamination")
	}
	if report.TDSPPM > TDSAcceptable {
		treatments = append(treatments, "Reverse osmosis (RO) for high TDS")
	}
	if report.FluoridePPM > FluorideAcceptable {
		treatments = append(treatments, "Activated alumina or bone char defluoridation")
	}
	if report.ArsenicPPB > ArsenicMaxPPB {
		treatments = append(treatments, "Arsenic removal plant (oxidation + adsorption)")
	}
	if report.IronPPM > IronAcceptable {
		treatments = append(treatments, "Aeration and filtration for iron removal")
	}
	if report.TurbidityNTU > TurbidityAcceptable {
		treatments = append(treatments, "Slow sand filtration or coagulation-flocculation")
	}
	if report.NitratePPM > NitrateMax {
		treatments = append(treatments, "Ion exchange or biological denitrification")
	}
	if report.PH < PHMin {
		treatments = append(treatments, "Lime dosing to raise pH")
	}
	if report.PH > PHMax {
		treatments = append(treatments, "Acid dosing or CO2 injection to lower pH")
	}
	return treatments
}
