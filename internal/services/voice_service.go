package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "serenai/internal/errors"
	"serenai/internal/models"
	"serenai/internal/uuid"
)

// voiceService handles voice sample uploads and listing.
type voiceService struct {
	db           *gorm.DB
	personas     PersonaServicer
	voiceDir     string
	maxFileBytes int64
}

// NewVoiceService creates a new VoiceServicer. Files are written under
// voiceDir; each file is capped at maxFileBytes.
func NewVoiceService(db *gorm.DB, personas PersonaServicer, voiceDir string, maxFileBytes int64) VoiceServicer {
	return &voiceService{db: db, personas: personas, voiceDir: voiceDir, maxFileBytes: maxFileBytes}
}

// UploadBatch validates and stores a batch of voice samples. The whole
// batch is validated before any file touches disk, so a rejected
// request writes nothing and creates no rows. After all files are
// persisted the persona's voice_count is recomputed from the active
// rows and consent is recorded.
func (s *voiceService) UploadBatch(userID uint, consent bool, files []*multipart.FileHeader) ([]models.VoiceAsset, error) {
	if !consent {
		return nil, apperrors.ErrConsentRequired
	}
	if len(files) == 0 {
		return nil, apperrors.ErrNoFiles
	}

	for _, header := range files {
		mimeType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(mimeType, "audio/") {
			return nil, apperrors.WithMessage(apperrors.ErrNotAudio,
				fmt.Sprintf("%q is not an audio file", header.Filename))
		}
		if header.Size > s.maxFileBytes {
			return nil, apperrors.WithMessage(apperrors.ErrFileTooLarge,
				fmt.Sprintf("%q exceeds the %d byte limit", header.Filename, s.maxFileBytes))
		}
	}

	persona, err := s.personas.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.voiceDir, 0o755); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	assets := make([]models.VoiceAsset, 0, len(files))
	for _, header := range files {
		asset, err := s.storeFile(persona.ID, userID, header)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *asset)
	}

	if err := s.refreshPersona(persona.ID); err != nil {
		return nil, err
	}
	return assets, nil
}

// storeFile writes one upload to disk under a generated UUIDv7 name and
// inserts its VoiceAsset row. The SHA-256 checksum is computed during
// the copy.
func (s *voiceService) storeFile(personaID, userID uint, header *multipart.FileHeader) (*models.VoiceAsset, error) {
	src, err := header.Open()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	defer src.Close()

	storedName := uuid.New() + filepath.Ext(header.Filename)
	path := filepath.Join(s.voiceDir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	defer dst.Close()

	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(dst, hasher), src)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	asset := &models.VoiceAsset{
		MomPersonaID: personaID,
		UserID:       userID,
		Filename:     header.Filename,
		StoredName:   storedName,
		Path:         path,
		MimeType:     header.Header.Get("Content-Type"),
		SizeBytes:    size,
		Checksum:     hex.EncodeToString(hasher.Sum(nil)),
		Status:       models.VoiceStatusValidated,
		IsActive:     true,
		UploadedAt:   time.Now(),
	}
	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// refreshPersona recomputes voice_count from the active voice rows and
// marks consent as given. Recounting (instead of incrementing) keeps
// the cache correct across retries and concurrent uploads.
func (s *voiceService) refreshPersona(personaID uint) error {
	var active int64
	if err := s.db.Model(&models.VoiceAsset{}).
		Where("mom_persona_id = ? AND is_active = ?", personaID, true).
		Count(&active).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"voice_count":        int(active),
		"consent_given":      true,
		"consent_granted_at": &now,
	}
	if err := s.db.Model(&models.MomPersona{}).Where("id = ?", personaID).
		Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListUserVoices returns the user's active voice assets, newest first.
func (s *voiceService) ListUserVoices(userID uint) ([]models.VoiceAsset, error) {
	var voices []models.VoiceAsset
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("uploaded_at DESC").Find(&voices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return voices, nil
}
