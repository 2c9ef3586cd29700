package services

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "serenai/internal/errors"
	"serenai/internal/models"
)

// personaService handles the mom persona store.
type personaService struct {
	db *gorm.DB
}

// NewPersonaService creates a new PersonaServicer.
func NewPersonaService(db *gorm.DB) PersonaServicer {
	return &personaService{db: db}
}

// GetOrCreate returns the user's persona, creating an empty one on
// first use. At most one persona exists per user.
func (s *personaService) GetOrCreate(userID uint) (*models.MomPersona, error) {
	var persona models.MomPersona
	err := s.db.Where("user_id = ?", userID).First(&persona).Error
	if err == nil {
		return &persona, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	persona = models.MomPersona{UserID: userID}
	if err := s.db.Create(&persona).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &persona, nil
}

// SavePersonality upserts the persona's personality document.
func (s *personaService) SavePersonality(userID uint, personality []byte) (*models.MomPersona, error) {
	persona, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	persona.Personality = datatypes.JSON(personality)
	if err := s.db.Model(persona).Update("personality", persona.Personality).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return persona, nil
}

// GetPersonaWithVoices returns the persona and its active voice assets.
// A user without a persona gets empty defaults, not an error.
func (s *personaService) GetPersonaWithVoices(userID uint) (*models.MomPersona, []models.VoiceAsset, error) {
	var persona models.MomPersona
	if err := s.db.Where("user_id = ?", userID).First(&persona).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.MomPersona{UserID: userID}, []models.VoiceAsset{}, nil
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var voices []models.VoiceAsset
	if err := s.db.Where("mom_persona_id = ? AND is_active = ?", persona.ID, true).
		Order("uploaded_at DESC").Find(&voices).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &persona, voices, nil
}
