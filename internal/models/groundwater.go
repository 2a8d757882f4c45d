package models

type Season string

const (
	SeasonPreMonsoon  Season = "pre_monsoon"
	SeasonMonsoon     Season = "monsoon"
	SeasonPostMonsoon Season = "post_monsoon"
	SeasonWinter      Season = "winter"
)

// GroundwaterLevel is one seasonal depth-to-water measurement.
// Depth is meters below ground, so larger is worse. PreviousYearDepth
// is a manually supplied baseline, not derived from stored history.
type GroundwaterLevel struct {
	PanchayatID       string  `json:"panchayat_id"`
	Season            Season  `json:"season"`
	Year              int     `json:"year"`
	DepthMeters       float64 `json:"depth_meters"`
	PreviousYearDepth float64 `json:"previous_year_depth"`
}

// ChangeMeters is the year-over-year depth change, positive when the
// water table fell.
func (g *GroundwaterLevel) ChangeMeters() float64 {
	return round2(g.DepthMeters - g.PreviousYearDepth)
}

func (g *GroundwaterLevel) IsDeclining() bool {
	return g.DepthMeters > g.PreviousYearDepth
}
