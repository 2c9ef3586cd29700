package models

import "gorm.io/datatypes"

// UserProfile holds free-form profile fields for a user.
// At most one profile exists per user; saves are upserts.
type UserProfile struct {
	Base
	UserID      uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName    string         `json:"full_name"`
	DOB         string         `json:"dob"`
	Preferences datatypes.JSON `json:"preferences,omitempty"`
}
