package models

import "time"

// Voice asset statuses.
const (
	VoiceStatusPending   = "pending"
	VoiceStatusValidated = "validated"
)

// VoiceAsset records one uploaded audio sample. The bytes live on disk
// under StoredName; the row is soft-deleted via IsActive rather than
// removed.
type VoiceAsset struct {
	Base
	MomPersonaID uint      `gorm:"not null;index" json:"mom_persona_id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Filename     string    `gorm:"not null" json:"filename"`
	StoredName   string    `gorm:"not null" json:"stored_name"`
	Path         string    `gorm:"not null" json:"path"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	Checksum     string    `gorm:"size:64" json:"checksum"`
	Status       string    `gorm:"default:pending" json:"status"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
