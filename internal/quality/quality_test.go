package quality

import (
	"strings"
	"testing"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

// cleanReport is well inside every acceptable bound.
func cleanReport() models.WaterQualityReport {
	return models.WaterQualityReport{
		ReportID:     "r1",
		SourceID:     "src1",
		TestDate:     "2026-01-15",
		PH:           7.2,
		TDSPPM:       350,
		TurbidityNTU: 0.5,
		FluoridePPM:  0.5,
		ArsenicPPB:   1,
		IronPPM:      0.1,
		NitratePPM:   20,
	}
}

func TestGrade_Safe(t *testing.T) {
	a := NewAnalyzer()
	report := cleanReport()

	if got := a.Grade(&report); got != models.GradeSafe {
		t.Errorf("expected safe, got %s", got)
	}
	if issues := a.IdentifyContaminants(&report); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
	if treatments := a.RecommendTreatment(&report); len(treatments) != 0 {
		t.Errorf("expected no treatments, got %v", treatments)
	}
}

func TestGrade_Tiers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.WaterQualityReport)
		want   models.QualityGrade
	}{
		{"ph below hazardous floor", func(r *models.WaterQualityReport) { r.PH = 4.9 }, models.GradeHazardous},
		{"ph above hazardous ceiling", func(r *models.WaterQualityReport) { r.PH = 9.6 }, models.GradeHazardous},
		{"ph mildly acidic", func(r *models.WaterQualityReport) { r.PH = 6.0 }, models.GradeContaminated},
		{"ph mildly alkaline", func(r *models.WaterQualityReport) { r.PH = 9.0 }, models.GradeContaminated},
		{"tds over permissible", func(r *models.WaterQualityReport) { r.TDSPPM = 2500 }, models.GradeHazardous},
		{"tds over acceptable", func(r *models.WaterQualityReport) { r.TDSPPM = 800 }, models.GradeContaminated},
		{"turbidity over permissible", func(r *models.WaterQualityReport) { r.TurbidityNTU = 6 }, models.GradeContaminated},
		{"fluoride over permissible", func(r *models.WaterQualityReport) { r.FluoridePPM = 2.1 }, models.GradeHazardous},
		{"fluoride over acceptable", func(r *models.WaterQualityReport) { r.FluoridePPM = 1.2 }, models.GradeContaminated},
		{"arsenic over limit", func(r *models.WaterQualityReport) { r.ArsenicPPB = 15 }, models.GradeHazardous},
		{"iron over permissible", func(r *models.WaterQualityReport) { r.IronPPM = 1.5 }, models.GradeContaminated},
		{"nitrate over limit", func(r *models.WaterQualityReport) { r.NitratePPM = 50 }, models.GradeHazardous},
		{"coliform present", func(r *models.WaterQualityReport) { r.ColiformPresent = true }, models.GradeHazardous},
	}

	a := NewAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := cleanReport()
			tt.mutate(&report)
			if got := a.Grade(&report); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestGrade_ColiformOverridesEverything(t *testing.T) {
	a := NewAnalyzer()
	report := cleanReport()
	report.ColiformPresent = true

	if got := a.Grade(&report); got != models.GradeHazardous {
		t.Errorf("coliform must be hazardous regardless of other parameters, got %s", got)
	}
}

func TestGrade_HazardousBeatsContaminated(t *testing.T) {
	a := NewAnalyzer()
	report := cleanReport()
	report.TDSPPM = 800      // contaminated tier
	report.FluoridePPM = 2.0 // hazardous tier

	if got := a.Grade(&report); got != models.GradeHazardous {
		t.Errorf("expected hazardous to win, got %s", got)
	}
}

// Turbidity between its acceptable and permissible bounds triggers no
// contaminated flag, but blocks the safe verdict.
func TestGrade_AcceptableWindow(t *testing.T) {
	a := NewAnalyzer()
	report := cleanReport()
	report.TurbidityNTU = 3

	if got := a.Grade(&report); got != models.GradeAcceptable {
		t.Errorf("expected acceptable, got %s", got)
	}
}

func TestGrade_IronBlocksSafe(t *testing.T) {
	a := NewAnalyzer()
	report := cleanReport()
	report.IronPPM = 0.5 // over acceptable, under permissible

	if got := a.Grade(&report); got != models.GradeAcceptable {
		t.Errorf("expected acceptable, got %s", got)
	}
}

func TestIdentifyContaminants_OrderAndContent(t *testing.T) {
	a := NewAnalyzer()
	report := cleanReport()
	report.PH = 5.5
	report.TDSPPM = 900
	report.ChloridePPM = 400
	report.ColiformPresent = true

	issues := a.IdentifyContaminants(&report)
	if len(issues) != 4 {
		t.Fatalf("expected 4 issues, got %d: %v", len(issues), issues)
	}
	if !strings.HasPrefix(issues[0], "pH too low") {
		t.Errorf("expected pH issue first, got %q", issues[0])
	}
	if !strings.HasPrefix(issues[1], "TDS") {
		t.Errorf("expected TDS issue second, got %q", issues[1])
	}
	if !strings.HasPrefix(issues[2], "Chloride") {
		t.Errorf("expected chloride issue third, got %q", issues[2])
	}
	if issues[3] != "Coliform bacteria detected" {
		t.Errorf("expected coliform issue last, got %q", issues[3])
	}
}

// Chloride never affects the grade, only the contaminant listing.
func TestChloride_ListedButNotGraded(t *testing.T) {
	a := NewAnalyzer()
	report := cleanReport()
	report.ChloridePPM = 900

	if got := a.Grade(&report); got != models.GradeSafe {
		t.Errorf("chloride must not affect grade, got %s", got)
	}
	issues := a.IdentifyContaminants(&report)
	if len(issues) != 1 || !strings.HasPrefix(issues[0], "Chloride") {
		t.Errorf("expected single chloride issue, got %v", issues)
	}
}

func TestRecommendTreatment_Order(t *testing.T) {
	a := NewAnalyzer()
	report := cleanReport()
	report.ColiformPresent = true
	report.TDSPPM = 900
	report.PH = 9.0

	treatments := a.RecommendTreatment(&report)
	if len(treatments) != 3 {
		t.Fatalf("expected 3 treatments, got %d: %v", len(treatments), treatments)
	}
	if !strings.Contains(treatments[0], "Chlorination") {
		t.Errorf("expected disinfection first, got %q", treatments[0])
	}
	if !strings.Contains(treatments[1], "Reverse osmosis") {
		t.Errorf("expected RO second, got %q", treatments[1])
	}
	if !strings.Contains(treatments[2], "Acid dosing") {
		t.Errorf("expected pH correction last, got %q", treatments[2])
	}
}

// Treatment thresholds use acceptable bounds, not hazardous ones.
func TestRecommendTreatment_AcceptableTier(t *testing.T) {
	a := NewAnalyzer()
	report := cleanReport()
	report.FluoridePPM = 1.2 // over acceptable, under permissible

	treatments := a.RecommendTreatment(&report)
	if len(treatments) != 1 || !strings.Contains(treatments[0], "defluoridation") {
		t.Errorf("expected defluoridation recommendation, got %v", treatments)
	}
}
