package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"serenai/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestPersona creates an empty mom persona for the user.
func CreateTestPersona(t *testing.T, db *gorm.DB, userID uint) *models.MomPersona {
	t.Helper()

	persona := &models.MomPersona{UserID: userID}
	if err := db.Create(persona).Error; err != nil {
		t.Fatalf("failed to create test persona: %v", err)
	}
	return persona
}

// CreateTestVoiceAsset creates an active, validated voice asset.
func CreateTestVoiceAsset(t *testing.T, db *gorm.DB, personaID, userID uint) *models.VoiceAsset {
	t.Helper()

	n := nextID()
	asset := &models.VoiceAsset{
		MomPersonaID: personaID,
		UserID:       userID,
		Filename:     fmt.Sprintf("sample%d.wav", n),
		StoredName:   fmt.Sprintf("stored%d.wav", n),
		Path:         fmt.Sprintf("static/mom_voices/stored%d.wav", n),
		MimeType:     "audio/wav",
		SizeBytes:    1024,
		Status:       models.VoiceStatusValidated,
		IsActive:     true,
		UploadedAt:   time.Now(),
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test voice asset: %v", err)
	}
	return asset
}

// CreateTestEvent creates an event with the given type/key/severity.
func CreateTestEvent(t *testing.T, db *gorm.DB, userID uint, eventType, eventKey, severity string) *models.Event {
	t.Helper()

	event := &models.Event{
		UserID:     userID,
		EventType:  eventType,
		EventKey:   eventKey,
		Severity:   severity,
		Source:     "ai",
		OccurredAt: time.Now(),
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

// CreateTestMistakeEvents creates n generic_mistake events for the user.
func CreateTestMistakeEvents(t *testing.T, db *gorm.DB, userID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		CreateTestEvent(t, db, userID, "mistake", "generic_mistake", models.SeverityMedium)
	}
}
