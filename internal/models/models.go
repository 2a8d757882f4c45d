// Package models holds the value types shared by every engine: water
// sources, quality reports, FHTC coverage, groundwater levels, rainfall
// records, budgets, and alerts. Entities are plain values; derived
// quantities are methods and are never stored.
package models

import "math"

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
