package models

import (
	"time"

	"gorm.io/datatypes"
)

// MomPersona is the configurable "mom" personality attached to a user.
// VoiceCount is a denormalized count of active voice assets and is
// recomputed from the voice_assets table on every upload, never
// incremented in place.
type MomPersona struct {
	Base
	UserID           uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Personality      datatypes.JSON `json:"personality,omitempty"`
	ConsentGiven     bool           `gorm:"default:false" json:"consent_given"`
	ConsentGrantedAt *time.Time     `json:"consent_granted_at,omitempty"`
	VoiceReady       bool           `gorm:"default:false" json:"voice_ready"`
	VoiceCount       int            `gorm:"default:0" json:"voice_count"`

	Voices []VoiceAsset `gorm:"foreignKey:MomPersonaID" json:"voices,omitempty"`
}
