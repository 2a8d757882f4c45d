package api

import (
	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func toGeoJSON(list []models.WaterSource) FeatureCollection {
	features := make([]Feature, 0, len(list))

	for i := range list {
		s := &list[i]
		f := Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{s.Longitude, s.Latitude},
			},
			Properties: map[string]any{
				"source_id":     s.SourceID,
				"panchayat_id":  s.PanchayatID,
				"name":          s.Name,
				"source_type":   string(s.SourceType),
				"capacity_lpd":  s.CapacityLPD,
				"yield_lpd":     s.CurrentYield,
				"yield_pct":     s.YieldPct(),
				"depth_meters":  s.DepthMeters,
				"is_functional": s.IsFunctional,
				"last_tested":   s.LastTestedDate,
			},
		}
		features = append(features, f)
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
