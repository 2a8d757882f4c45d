package ingest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/invincible-jha/aumai-jaldrishti/internal/alerts"
	"github.com/invincible-jha/aumai-jaldrishti/internal/config"
	"github.com/invincible-jha/aumai-jaldrishti/internal/coverage"
	"github.com/invincible-jha/aumai-jaldrishti/internal/groundwater"
	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
	"github.com/invincible-jha/aumai-jaldrishti/internal/rainfall"
	"github.com/invincible-jha/aumai-jaldrishti/internal/repository"
	"github.com/invincible-jha/aumai-jaldrishti/internal/sources"
	"github.com/invincible-jha/aumai-jaldrishti/internal/stream"
)

// memStore collects alerts in memory for assertions.
type memStore struct {
	mu     sync.Mutex
	alerts []models.WaterAlert
}

func (s *memStore) Add(ctx context.Context, a *models.WaterAlert) error {
	s.mu.Lock()
	s.alerts = append(s.alerts, *a)
	s.mu.Unlock()
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id string) (*models.WaterAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].AlertID == id {
			a := s.alerts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *memStore) ListAlerts(ctx context.Context, opts repository.Filter) ([]models.WaterAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WaterAlert, len(s.alerts))
	copy(out, s.alerts)
	return out, nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alerts)
}

type fixture struct {
	mgr         *Manager
	sources     *sources.Registry
	coverage    *coverage.Tracker
	groundwater *groundwater.Monitor
	rainfall    *rainfall.Analyzer
	store       *memStore
	broadcaster *stream.Broadcaster
	cancel      context.CancelFunc
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{
		Worker: config.WorkerConfig{Count: 1, BufferSize: 10},
	}
	f := &fixture{
		sources:     sources.NewRegistry(),
		coverage:    coverage.NewTracker(),
		groundwater: groundwater.NewMonitor(),
		rainfall:    rainfall.NewAnalyzer(),
		store:       &memStore{},
		broadcaster: stream.NewBroadcaster(),
	}
	f.mgr = NewManager(cfg, f.sources, f.coverage, f.groundwater, f.rainfall,
		alerts.NewEngine(), f.store, f.broadcaster)

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.mgr.Start(ctx)

	t.Cleanup(func() {
		cancel()
		f.broadcaster.Close()
	})
	return f
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestManager_RoutesSources(t *testing.T) {
	f := newFixture(t)

	f.mgr.SubmitSources([]models.WaterSource{{
		SourceID:     "s1",
		PanchayatID:  "p1",
		SourceType:   models.SourceTypeBorewell,
		CapacityLPD:  1000,
		CurrentYield: 800,
		IsFunctional: true,
	}})
	f.mgr.Stop()

	if _, ok := f.sources.Get("s1"); !ok {
		t.Error("expected source registered")
	}
	if got := f.store.count(); got != 0 {
		t.Errorf("source registration must not raise alerts, got %d", got)
	}
}

func TestManager_QualityAlertPersistedAndBroadcast(t *testing.T) {
	f := newFixture(t)
	_, ch := f.broadcaster.Subscribe()

	f.mgr.SubmitQualityReports([]models.WaterQualityReport{{
		ReportID:        "r1",
		SourceID:        "src1",
		PH:              7.0,
		ColiformPresent: true,
	}})

	waitFor(t, func() bool { return f.store.count() == 1 })

	got, err := f.store.ListAlerts(context.Background(), repository.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Level != models.AlertLevelEmergency || got[0].Category != "water_quality" {
		t.Errorf("unexpected alert: %+v", got[0])
	}

	select {
	case a := <-ch:
		if a.AlertID != got[0].AlertID {
			t.Errorf("broadcast id %s != stored id %s", a.AlertID, got[0].AlertID)
		}
	case <-time.After(time.Second):
		t.Fatal("expected broadcast alert")
	}
}

func TestManager_GroundwaterRecordedAndChecked(t *testing.T) {
	f := newFixture(t)

	f.mgr.SubmitGroundwaterLevels([]models.GroundwaterLevel{{
		PanchayatID:       "p1",
		Season:            models.SeasonPreMonsoon,
		Year:              2026,
		DepthMeters:       45,
		PreviousYearDepth: 40,
	}})

	// Depth alert plus trend alert.
	waitFor(t, func() bool { return f.store.count() == 2 })

	if got := len(f.groundwater.ByPanchayat("p1")); got != 1 {
		t.Errorf("expected record stored in monitor, got %d", got)
	}
}

func TestManager_RainfallDeviationChecked(t *testing.T) {
	f := newFixture(t)

	f.mgr.SubmitRainfallRecords([]models.RainfallRecord{{
		PanchayatID: "p1",
		Month:       7,
		Year:        2026,
		RainfallMM:  30,
		NormalMM:    160,
	}})

	waitFor(t, func() bool { return f.store.count() == 1 })

	got, _ := f.store.ListAlerts(context.Background(), repository.Filter{})
	if got[0].Category != "drought" || got[0].Level != models.AlertLevelCritical {
		t.Errorf("expected critical drought alert, got %+v", got[0])
	}
}

func TestManager_FHTCUpdatesTracker(t *testing.T) {
	f := newFixture(t)

	f.mgr.SubmitFHTCStatuses([]models.FHTCStatus{{
		PanchayatID:     "p1",
		TotalHouseholds: 500,
		FHTCProvided:    400,
		FHTCFunctional:  360,
	}})
	f.mgr.Stop()

	status, ok := f.coverage.Get("p1")
	if !ok || status.CoveragePct() != 80.0 {
		t.Errorf("expected tracked status with 80%% coverage, got %+v ok=%v", status, ok)
	}
}
