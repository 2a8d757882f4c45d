package models

// FHTCStatus tracks functional household tap connections for one
// panchayat under the Jal Jeevan Mission. Provided/functional counts are
// taken as reported; they are not clamped against total households.
type FHTCStatus struct {
	PanchayatID     string `json:"panchayat_id"`
	PanchayatName   string `json:"panchayat_name"`
	TotalHouseholds int    `json:"total_households"`
	FHTCProvided    int    `json:"fhtc_provided"`
	FHTCFunctional  int    `json:"fhtc_functional"`
	TargetDate      string `json:"target_date"`
	ReportDate      string `json:"report_date"`
}

// CoveragePct is the share of households with a tap connection.
func (f *FHTCStatus) CoveragePct() float64 {
	if f.TotalHouseholds == 0 {
		return 0
	}
	return round1(float64(f.FHTCProvided) / float64(f.TotalHouseholds) * 100)
}

// FunctionalPct is the share of provided connections verified working.
func (f *FHTCStatus) FunctionalPct() float64 {
	if f.FHTCProvided == 0 {
		return 0
	}
	return round1(float64(f.FHTCFunctional) / float64(f.FHTCProvided) * 100)
}
