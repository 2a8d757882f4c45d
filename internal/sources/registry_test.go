package sources

import (
	"testing"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

func testSource(id, panchayat string, yield, capacity float64, functional bool) models.WaterSource {
	return models.WaterSource{
		SourceID:     id,
		PanchayatID:  panchayat,
		Name:         "Source " + id,
		SourceType:   models.SourceTypeBorewell,
		CapacityLPD:  capacity,
		CurrentYield: yield,
		IsFunctional: functional,
	}
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register(testSource("s1", "p1", 1000, 2000, true))
	r.Register(testSource("s1", "p1", 500, 2000, true))

	s, ok := r.Get("s1")
	if !ok {
		t.Fatal("expected source to exist")
	}
	if s.CurrentYield != 500 {
		t.Errorf("expected last write to win, got yield %g", s.CurrentYield)
	}
}

func TestRegistry_GetMiss(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Get("nope"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestRegistry_ByPanchayatAndType(t *testing.T) {
	r := NewRegistry()
	r.Register(testSource("s1", "p1", 100, 200, true))
	r.Register(testSource("s2", "p2", 100, 200, true))
	hp := testSource("s3", "p1", 100, 200, true)
	hp.SourceType = models.SourceTypeHandpump
	r.Register(hp)

	if got := len(r.ByPanchayat("p1")); got != 2 {
		t.Errorf("expected 2 sources in p1, got %d", got)
	}
	if got := len(r.ByType(models.SourceTypeHandpump)); got != 1 {
		t.Errorf("expected 1 handpump, got %d", got)
	}
	if got := r.ByPanchayat("unknown"); len(got) != 0 {
		t.Errorf("expected empty result for unknown panchayat, got %d", len(got))
	}
}

func TestRegistry_TotalSupplyExcludesNonFunctional(t *testing.T) {
	r := NewRegistry()
	r.Register(testSource("s1", "p1", 1000, 2000, true))

	before := r.TotalSupplyLPD("p1")
	r.Register(testSource("s2", "p1", 5000, 5000, false))

	if after := r.TotalSupplyLPD("p1"); after != before {
		t.Errorf("non-functional source changed total supply: %g -> %g", before, after)
	}
	if got := len(r.NonFunctional("p1")); got != 1 {
		t.Errorf("expected 1 non-functional source, got %d", got)
	}
}

func TestRegistry_LowYield(t *testing.T) {
	r := NewRegistry()
	r.Register(testSource("s1", "p1", 500, 2000, true))  // 25%
	r.Register(testSource("s2", "p1", 1800, 2000, true)) // 90%
	r.Register(testSource("s3", "p1", 100, 2000, false)) // non-functional, excluded

	low := r.LowYield("p1", DefaultLowYieldPct)
	if len(low) != 1 || low[0].SourceID != "s1" {
		t.Errorf("expected only s1 low yield, got %v", low)
	}
}

func TestYieldPct_ZeroCapacity(t *testing.T) {
	s := testSource("s1", "p1", 1000, 0, true)
	if got := s.YieldPct(); got != 0 {
		t.Errorf("expected 0 for zero capacity, got %g", got)
	}
}
