package models

// RainfallRecord is one month of observed rainfall against the
// long-period normal for a panchayat.
type RainfallRecord struct {
	PanchayatID string  `json:"panchayat_id"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	RainfallMM  float64 `json:"rainfall_mm"`
	NormalMM    float64 `json:"normal_mm"`
}

// DeviationPct is the departure from normal for this single month,
// 0 when no normal is on record.
func (r *RainfallRecord) DeviationPct() float64 {
	if r.NormalMM == 0 {
		return 0
	}
	return round1((r.RainfallMM - r.NormalMM) / r.NormalMM * 100)
}
