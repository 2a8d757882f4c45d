package models

type SourceType string

const (
	SourceTypeBorewell  SourceType = "borewell"
	SourceTypeHandpump  SourceType = "handpump"
	SourceTypeOpenWell  SourceType = "open_well"
	SourceTypeRiver     SourceType = "river"
	SourceTypePond      SourceType = "pond"
	SourceTypeSpring    SourceType = "spring"
	SourceTypeReservoir SourceType = "reservoir"
	SourceTypeRainwater SourceType = "rainwater"
	SourceTypePipeline  SourceType = "pipeline"
)

// WaterSource is a single drinking-water source owned by a panchayat.
// Volumes are liters per day.
type WaterSource struct {
	SourceID       string     `json:"source_id"`
	PanchayatID    string     `json:"panchayat_id"`
	Name           string     `json:"name"`
	SourceType     SourceType `json:"source_type"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	CapacityLPD    float64    `json:"capacity_liters_per_day"`
	CurrentYield   float64    `json:"current_yield_lpd"`
	DepthMeters    float64    `json:"depth_meters"`
	IsFunctional   bool       `json:"is_functional"`
	LastTestedDate string     `json:"last_tested_date"`
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (s *WaterSource) Coordinates() Coordinates {
	return Coordinates{
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
}

// YieldPct is current yield as a percentage of rated capacity,
// recomputed on every call. Zero-capacity sources yield 0.
func (s *WaterSource) YieldPct() float64 {
	if s.CapacityLPD == 0 {
		return 0
	}
	return round1(s.CurrentYield / s.CapacityLPD * 100)
}
