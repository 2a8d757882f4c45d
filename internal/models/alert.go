package models

type AlertLevel string

const (
	AlertLevelInfo      AlertLevel = "info"
	AlertLevelWarning   AlertLevel = "warning"
	AlertLevelCritical  AlertLevel = "critical"
	AlertLevelEmergency AlertLevel = "emergency"
)

// WaterAlert is an actionable finding emitted by the alert engine.
// PanchayatID is empty for source- or report-scoped alerts.
type WaterAlert struct {
	AlertID     string     `json:"alert_id"`
	PanchayatID string     `json:"panchayat_id"`
	Level       AlertLevel `json:"level"`
	Category    string     `json:"category"`
	Message     string     `json:"message"`
	SourceID    string     `json:"source_id,omitempty"`
	Date        string     `json:"date,omitempty"`
	IsActive    bool       `json:"is_active"`
}
