package services

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "serenai/internal/errors"
	"serenai/internal/models"
)

// profileService handles user profile storage.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// GetProfile returns the user's profile, or an empty profile when none
// has been saved yet. Absence is not an error.
func (s *profileService) GetProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserProfile{UserID: userID}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// SaveProfile upserts the user's profile. Only provided fields
// overwrite stored values; empty fields leave the existing data alone.
func (s *profileService) SaveProfile(userID uint, fullName, dob string, preferences []byte) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	profile.UserID = userID
	if fullName != "" {
		profile.FullName = fullName
	}
	if dob != "" {
		profile.DOB = dob
	}
	if preferences != nil {
		profile.Preferences = datatypes.JSON(preferences)
	}

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}
