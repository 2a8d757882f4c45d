// Package sources keeps the in-memory catalog of water sources.
package sources

import (
	"sync"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

// DefaultLowYieldPct is the yield threshold below which a functional
// source counts as low-yield.
const DefaultLowYieldPct = 40.0

// Registry indexes water sources by source ID. Registering an existing
// ID overwrites the previous record. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]models.WaterSource
}

func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]models.WaterSource),
	}
}

func (r *Registry) Register(source models.WaterSource) {
	r.mu.Lock()
	r.sources[source.SourceID] = source
	r.mu.Unlock()
}

func (r *Registry) Get(sourceID string) (models.WaterSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sources[sourceID]
	return s, ok
}

func (r *Registry) ByPanchayat(panchayatID string) []models.WaterSource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.WaterSource
	for _, s := range r.sources {
		if s.PanchayatID == panchayatID {
			out = append(out, s)
		}
	}
	return out
}

func (r *Registry) ByType(sourceType models.SourceType) []models.WaterSource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.WaterSource
	for _, s := range r.sources {
		if s.SourceType == sourceType {
			out = append(out, s)
		}
	}
	return out
}

func (r *Registry) Functional(panchayatID string) []models.WaterSource {
	var out []models.WaterSource
	for _, s := range r.ByPanchayat(panchayatID) {
		if s.IsFunctional {
			out = append(out, s)
		}
	}
	return out
}

func (r *Registry) NonFunctional(panchayatID string) []models.WaterSource {
	var out []models.WaterSource
	for _, s := range r.ByPanchayat(panchayatID) {
		if !s.IsFunctional {
			out = append(out, s)
		}
	}
	return out
}

// TotalSupplyLPD sums current yield over functional sources only.
func (r *Registry) TotalSupplyLPD(panchayatID string) float64 {
	var total float64
	for _, s := range r.Functional(panchayatID) {
		total += s.CurrentYield
	}
	return total
}

// LowYield returns functional sources yielding below thresholdPct of
// rated capacity.
func (r *Registry) LowYield(panchayatID string, thresholdPct float64) []models.WaterSource {
	var out []models.WaterSource
	for _, s := range r.Functional(panchayatID) {
		if s.YieldPct() < thresholdPct {
			out = append(out, s)
		}
	}
	return out
}
