package models

import "time"

// Event types
const (
	EventTypeCatalogSeeded = "CATALOG_SEEDED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// CatalogSeededEvent published after the catalog has been replaced
type CatalogSeededEvent struct {
	BaseEvent
	ProductCount int      `json:"product_count"`
	PlanCount    int      `json:"plan_count"`
	Families     []string `json:"families"`
}
