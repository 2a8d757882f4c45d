package loader

import (
	"strings"
	"testing"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

func TestSources_SingleObjectNormalizesToList(t *testing.T) {
	data := []byte(`{
		"source_id": "s1", "panchayat_id": "p1", "name": "Main borewell",
		"source_type": "borewell", "latitude": 26.5, "longitude": 80.3,
		"capacity_liters_per_day": 20000, "current_yield_lpd": 15000,
		"is_functional": true
	}`)

	list, err := Sources(data)
	if err != nil {
		t.Fatalf("Sources failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 source, got %d", len(list))
	}
	if list[0].SourceID != "s1" || list[0].SourceType != models.SourceTypeBorewell {
		t.Errorf("unexpected source: %+v", list[0])
	}
}

func TestSources_List(t *testing.T) {
	data := []byte(`[
		{"source_id": "s1", "panchayat_id": "p1", "name": "A", "source_type": "handpump",
		 "latitude": 0, "longitude": 0, "capacity_liters_per_day": 100, "current_yield_lpd": 50},
		{"source_id": "s2", "panchayat_id": "p1", "name": "B", "source_type": "pond",
		 "latitude": 0, "longitude": 0, "capacity_liters_per_day": 100, "current_yield_lpd": 50}
	]`)

	list, err := Sources(data)
	if err != nil {
		t.Fatalf("Sources failed: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 sources, got %d", len(list))
	}
}

func TestSources_Validation(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{
			"bad type",
			`{"source_id": "s1", "source_type": "lake", "latitude": 0, "longitude": 0}`,
			"invalid source type",
		},
		{
			"latitude out of range",
			`{"source_id": "s1", "source_type": "pond", "latitude": 91, "longitude": 0}`,
			"latitude out of range",
		},
		{
			"negative capacity",
			`{"source_id": "s1", "source_type": "pond", "latitude": 0, "longitude": 0, "capacity_liters_per_day": -5}`,
			"capacity must be non-negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sources([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestQualityReports_Validation(t *testing.T) {
	if _, err := QualityReports([]byte(`{"report_id": "r1", "ph": 15}`)); err == nil {
		t.Error("expected pH range error")
	}
	if _, err := QualityReports([]byte(`{"report_id": "r1", "ph": 7, "arsenic_ppb": -1}`)); err == nil {
		t.Error("expected negative arsenic error")
	}
	list, err := QualityReports([]byte(`{"report_id": "r1", "ph": 7, "tds_ppm": 300}`))
	if err != nil || len(list) != 1 {
		t.Errorf("expected valid report, got %v / %v", list, err)
	}
}

// Provided exceeding total households passes: counts are taken as
// reported, only negatives are rejected.
func TestFHTCStatuses_Permissive(t *testing.T) {
	list, err := FHTCStatuses([]byte(`{"panchayat_id": "p1", "total_households": 100, "fhtc_provided": 150}`))
	if err != nil {
		t.Fatalf("expected permissive acceptance, got %v", err)
	}
	if list[0].FHTCProvided != 150 {
		t.Errorf("expected raw count preserved, got %d", list[0].FHTCProvided)
	}

	if _, err := FHTCStatuses([]byte(`{"panchayat_id": "p1", "total_households": -1}`)); err == nil {
		t.Error("expected negative household error")
	}
}

func TestGroundwaterLevels_Validation(t *testing.T) {
	if _, err := GroundwaterLevels([]byte(`{"panchayat_id": "p1", "season": "summer", "year": 2025, "depth_meters": 5}`)); err == nil {
		t.Error("expected invalid season error")
	}
	list, err := GroundwaterLevels([]byte(`{"panchayat_id": "p1", "season": "pre_monsoon", "year": 2025, "depth_meters": 5}`))
	if err != nil || len(list) != 1 {
		t.Errorf("expected valid record, got %v / %v", list, err)
	}
}

func TestRainfallRecords_Validation(t *testing.T) {
	if _, err := RainfallRecords([]byte(`{"panchayat_id": "p1", "month": 13, "year": 2025}`)); err == nil {
		t.Error("expected month range error")
	}
	if _, err := RainfallRecords([]byte(`{"panchayat_id": "p1", "month": 6, "year": 2025, "rainfall_mm": -2}`)); err == nil {
		t.Error("expected negative rainfall error")
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	if _, err := Sources([]byte(`{not json`)); err == nil {
		t.Error("expected decode error")
	}
	if _, err := Sources([]byte(`[{"source_id": }]`)); err == nil {
		t.Error("expected decode error for malformed list")
	}
}
