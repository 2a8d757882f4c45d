// Package ingest routes validated records into the registries and runs
// the alert checks over them, persisting and broadcasting whatever
// fires.
package ingest

import (
	"context"
	"log/slog"

	"github.com/invincible-jha/aumai-jaldrishti/internal/alerts"
	"github.com/invincible-jha/aumai-jaldrishti/internal/config"
	"github.com/invincible-jha/aumai-jaldrishti/internal/coverage"
	"github.com/invincible-jha/aumai-jaldrishti/internal/groundwater"
	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
	"github.com/invincible-jha/aumai-jaldrishti/internal/rainfall"
	"github.com/invincible-jha/aumai-jaldrishti/internal/repository"
	"github.com/invincible-jha/aumai-jaldrishti/internal/sources"
	"github.com/invincible-jha/aumai-jaldrishti/internal/stream"
	"github.com/invincible-jha/aumai-jaldrishti/internal/worker"
)

// Record is the one-of envelope the pipeline carries. Exactly one
// field is set per record.
type Record struct {
	Source      *models.WaterSource
	Quality     *models.WaterQualityReport
	FHTC        *models.FHTCStatus
	Groundwater *models.GroundwaterLevel
	Rainfall    *models.RainfallRecord
}

type Manager struct {
	cfg         *config.Config
	sources     *sources.Registry
	coverage    *coverage.Tracker
	groundwater *groundwater.Monitor
	rainfall    *rainfall.Analyzer
	engine      *alerts.Engine
	store       repository.AlertRepository
	broadcaster *stream.Broadcaster
	pool        *worker.Pool[Record]
}

func NewManager(
	cfg *config.Config,
	srcs *sources.Registry,
	cov *coverage.Tracker,
	gw *groundwater.Monitor,
	rain *rainfall.Analyzer,
	engine *alerts.Engine,
	store repository.AlertRepository,
	broadcaster *stream.Broadcaster,
) *Manager {
	return &Manager{
		cfg:         cfg,
		sources:     srcs,
		coverage:    cov,
		groundwater: gw,
		rainfall:    rain,
		engine:      engine,
		store:       store,
		broadcaster: broadcaster,
	}
}

func (m *Manager) Start(ctx context.Context) {
	m.pool = worker.NewPool(m.cfg.Worker.Count, m.cfg.Worker.BufferSize, m.process)
	m.pool.Start(ctx)
}

func (m *Manager) Stop() {
	m.pool.Stop()
	slog.Info("ingest manager stopped")
}

func (m *Manager) SubmitSources(list []models.WaterSource) {
	for i := range list {
		m.pool.Submit(Record{Source: &list[i]})
	}
}

func (m *Manager) SubmitQualityReports(list []models.WaterQualityReport) {
	for i := range list {
		m.pool.Submit(Record{Quality: &list[i]})
	}
}

func (m *Manager) SubmitFHTCStatuses(list []models.FHTCStatus) {
	for i := range list {
		m.pool.Submit(Record{FHTC: &list[i]})
	}
}

func (m *Manager) SubmitGroundwaterLevels(list []models.GroundwaterLevel) {
	for i := range list {
		m.pool.Submit(Record{Groundwater: &list[i]})
	}
}

func (m *Manager) SubmitRainfallRecords(list []models.RainfallRecord) {
	for i := range list {
		m.pool.Submit(Record{Rainfall: &list[i]})
	}
}

func (m *Manager) process(ctx context.Context, rec Record) error {
	var fired []models.WaterAlert

	switch {
	case rec.Source != nil:
		m.sources.Register(*rec.Source)
		slog.Debug("registered source", "id", rec.Source.SourceID, "panchayat", rec.Source.PanchayatID)
	case rec.Quality != nil:
		fired = m.engine.CheckQuality(rec.Quality)
		slog.Debug("processed quality report", "report", rec.Quality.ReportID, "alerts", len(fired))
	case rec.FHTC != nil:
		m.coverage.Update(*rec.FHTC)
		slog.Debug("updated coverage", "panchayat", rec.FHTC.PanchayatID)
	case rec.Groundwater != nil:
		m.groundwater.Add(*rec.Groundwater)
		fired = m.engine.CheckGroundwater(rec.Groundwater)
	case rec.Rainfall != nil:
		m.rainfall.Add(*rec.Rainfall)
		dev := m.rainfall.AnnualDeviationPct(rec.Rainfall.PanchayatID, rec.Rainfall.Year)
		fired = m.engine.CheckRainfall(rec.Rainfall.PanchayatID, dev)
	}

	for _, alert := range fired {
		if m.store != nil {
			if err := m.store.Add(ctx, &alert); err != nil {
				slog.Error("error persisting alert", "id", alert.AlertID, "error", err)
				return err
			}
		}
		if m.broadcaster != nil {
			m.broadcaster.Broadcast(alert)
		}
		slog.Info("alert raised", "id", alert.AlertID, "level", alert.Level, "category", alert.Category)
	}
	return nil
}
