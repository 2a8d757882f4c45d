// Package loader parses raw JSON into typed entities. Inputs may be a
// single object or an array; both normalize to a slice before anything
// reaches the engines. All field-range validation happens here — the
// engines assume bounds already hold.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

// decodeList accepts either a JSON array or a single JSON object and
// always returns a slice.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("error decoding record list: %w", err)
		}
		return list, nil
	}
	var single T
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("error decoding record: %w", err)
	}
	return []T{single}, nil
}

func Sources(data []byte) ([]models.WaterSource, error) {
	list, err := decodeList[models.WaterSource](data)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if err := ValidateSource(&list[i]); err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
	}
	return list, nil
}

func QualityReports(data []byte) ([]models.WaterQualityReport, error) {
	list, err := decodeList[models.WaterQualityReport](data)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if err := ValidateQualityReport(&list[i]); err != nil {
			return nil, fmt.Errorf("report %d: %w", i, err)
		}
	}
	return list, nil
}

func FHTCStatuses(data []byte) ([]models.FHTCStatus, error) {
	list, err := decodeList[models.FHTCStatus](data)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if err := ValidateFHTCStatus(&list[i]); err != nil {
			return nil, fmt.Errorf("fhtc status %d: %w", i, err)
		}
	}
	return list, nil
}

func GroundwaterLevels(data []byte) ([]models.GroundwaterLevel, error) {
	list, err := decodeList[models.GroundwaterLevel](data)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if err := ValidateGroundwaterLevel(&list[i]); err != nil {
			return nil, fmt.Errorf("groundwater level %d: %w", i, err)
		}
	}
	return list, nil
}

func RainfallRecords(data []byte) ([]models.RainfallRecord, error) {
	list, err := decodeList[models.RainfallRecord](data)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if err := ValidateRainfallRecord(&list[i]); err != nil {
			return nil, fmt.Errorf("rainfall record %d: %w", i, err)
		}
	}
	return list, nil
}

func ValidateSource(s *models.WaterSource) error {
	switch s.SourceType {
	case models.SourceTypeBorewell, models.SourceTypeHandpump, models.SourceTypeOpenWell,
		models.SourceTypeRiver, models.SourceTypePond, models.SourceTypeSpring,
		models.SourceTypeReservoir, models.SourceTypeRainwater, models.SourceTypePipeline:
	default:
		return fmt.Errorf("invalid source type: %q", s.SourceType)
	}
	if s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("latitude out of range: %g", s.Latitude)
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return fmt.Errorf("longitude out of range: %g", s.Longitude)
	}
	if s.CapacityLPD < 0 {
		return fmt.Errorf("capacity must be non-negative: %g", s.CapacityLPD)
	}
	if s.CurrentYield < 0 {
		return fmt.Errorf("current yield must be non-negative: %g", s.CurrentYield)
	}
	if s.DepthMeters < 0 {
		return fmt.Errorf("depth must be non-negative: %g", s.DepthMeters)
	}
	return nil
}

func ValidateQualityReport(r *models.WaterQualityReport) error {
	if r.PH < 0 || r.PH > 14 {
		return fmt.Errorf("pH out of range: %g", r.PH)
	}
	for name, v := range map[string]float64{
		"tds_ppm":       r.TDSPPM,
		"turbidity_ntu": r.TurbidityNTU,
		"chloride_ppm":  r.ChloridePPM,
		"fluoride_ppm":  r.FluoridePPM,
		"arsenic_ppb":   r.ArsenicPPB,
		"iron_ppm":      r.IronPPM,
		"nitrate_ppm":   r.NitratePPM,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative: %g", name, v)
		}
	}
	return nil
}

func ValidateFHTCStatus(s *models.FHTCStatus) error {
	if s.TotalHouseholds < 0 {
		return fmt.Errorf("total households must be non-negative: %d", s.TotalHouseholds)
	}
	if s.FHTCProvided < 0 {
		return fmt.Errorf("fhtc provided must be non-negative: %d", s.FHTCProvided)
	}
	if s.FHTCFunctional < 0 {
		return fmt.Errorf("fhtc functional must be non-negative: %d", s.FHTCFunctional)
	}
	return nil
}

func ValidateGroundwaterLevel(g *models.GroundwaterLevel) error {
	switch g.Season {
	case models.SeasonPreMonsoon, models.SeasonMonsoon, models.SeasonPostMonsoon, models.SeasonWinter:
	default:
		return fmt.Errorf("invalid season: %q", g.Season)
	}
	if g.DepthMeters < 0 {
		return fmt.Errorf("depth must be non-negative: %g", g.DepthMeters)
	}
	if g.PreviousYearDepth < 0 {
		return fmt.Errorf("previous year depth must be non-negative: %g", g.PreviousYearDepth)
	}
	return nil
}

func ValidateRainfallRecord(r *models.RainfallRecord) error {
	if r.Month < 1 || r.Month > 12 {
		return fmt.Errorf("month out of range: %d", r.Month)
	}
	if r.RainfallMM < 0 {
		return fmt.Errorf("rainfall must be non-negative: %g", r.RainfallMM)
	}
	if r.NormalMM < 0 {
		return fmt.Errorf("normal rainfall must be non-negative: %g", r.NormalMM)
	}
	return nil
}
