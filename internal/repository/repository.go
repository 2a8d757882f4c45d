// Package repository persists emitted alerts. The engines themselves
// stay in-memory; this is the durability boundary around them.
package repository

import (
	"context"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

// Filter narrows alert listings. Zero values mean no constraint.
type Filter struct {
	Limit       int
	Level       *models.AlertLevel
	Category    string
	PanchayatID string
}

type AlertRepository interface {
	Add(ctx context.Context, a *models.WaterAlert) error
	GetByID(ctx context.Context, id string) (*models.WaterAlert, error)
	ListAlerts(ctx context.Context, opts Filter) ([]models.WaterAlert, error)
}
