package models

type QualityGrade string

const (
	GradeSafe         QualityGrade = "safe"
	GradeAcceptable   QualityGrade = "acceptable"
	GradeContaminated QualityGrade = "contaminated"
	GradeHazardous    QualityGrade = "hazardous"
)

// WaterQualityReport is one lab test of a source. Grade may arrive
// pre-populated from upstream data but is always recomputed by the
// quality engine before use.
type WaterQualityReport struct {
	ReportID        string       `json:"report_id"`
	SourceID        string       `json:"source_id"`
	TestDate        string       `json:"test_date"`
	PH              float64      `json:"ph"`
	TDSPPM          float64      `json:"tds_ppm"`
	TurbidityNTU    float64      `json:"turbidity_ntu"`
	ChloridePPM     float64      `json:"chloride_ppm"`
	FluoridePPM     float64      `json:"fluoride_ppm"`
	ArsenicPPB      float64      `json:"arsenic_ppb"`
	IronPPM         float64      `json:"iron_ppm"`
	NitratePPM      float64      `json:"nitrate_ppm"`
	ColiformPresent bool         `json:"coliform_present"`
	Grade           QualityGrade `json:"grade,omitempty"`
}
