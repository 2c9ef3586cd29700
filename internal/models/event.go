package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Event is one behavioral event observed for a user. Rows are
// append-only: they are never updated or deleted, and recency queries
// order by occurred_at descending.
type Event struct {
	Base
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	EventType  string         `gorm:"not null" json:"event_type"`
	EventKey   string         `gorm:"not null;index" json:"event_key"`
	Severity   string         `gorm:"not null" json:"severity"`
	Source     string         `json:"source"`
	Context    datatypes.JSON `json:"context,omitempty"`
	OccurredAt time.Time      `gorm:"not null;index" json:"occurred_at"`
}
