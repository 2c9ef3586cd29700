package services

import (
	"mime/multipart"

	"serenai/internal/models"
	"serenai/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// ProfileServicer defines the contract for user profile storage.
// Saves are upserts: at most one profile row exists per user.
type ProfileServicer interface {
	GetProfile(userID uint) (*models.UserProfile, error)
	SaveProfile(userID uint, fullName, dob string, preferences []byte) (*models.UserProfile, error)
}

// PersonaServicer defines the contract for the mom persona store.
type PersonaServicer interface {
	GetOrCreate(userID uint) (*models.MomPersona, error)
	SavePersonality(userID uint, personality []byte) (*models.MomPersona, error)
	GetPersonaWithVoices(userID uint) (*models.MomPersona, []models.VoiceAsset, error)
}

// VoiceServicer defines the contract for voice sample uploads.
type VoiceServicer interface {
	UploadBatch(userID uint, consent bool, files []*multipart.FileHeader) ([]models.VoiceAsset, error)
	ListUserVoices(userID uint) ([]models.VoiceAsset, error)
}

// EventServicer defines the contract for the append-only behavioral
// event log.
type EventServicer interface {
	Record(userID uint, eventType, eventKey, severity, source string, context map[string]interface{}) (*models.Event, error)
	CountRecentByKey(userID uint, eventKey string, window int) (int, error)
	ListUserEvents(userID uint, severity string, page pagination.PageRequest) (*pagination.PageResponse[models.Event], error)
}

// ChatResponse is the reply/tone pair returned to the caller.
type ChatResponse struct {
	Reply string `json:"reply"`
	Tone  string `json:"tone"`
}

// ChatServicer defines the contract for the chat orchestrator.
type ChatServicer interface {
	Respond(userID uint, message string) (*ChatResponse, error)
}
