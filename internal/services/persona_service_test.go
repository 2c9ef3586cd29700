package services

import (
	"testing"

	"serenai/internal/testutil"
)

func TestGetOrCreatePersona(t *testing.T) {
	t.Run("creates_on_first_use", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPersonaService(db)

		user := testutil.CreateTestUser(t, db)
		persona, err := svc.GetOrCreate(user.ID)
		testutil.AssertNoError(t, err)

		if persona.ID == 0 {
			t.Fatal("expected non-zero persona ID")
		}
		if persona.ConsentGiven {
			t.Error("expected fresh persona without consent")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPersonaService(db)

		user := testutil.CreateTestUser(t, db)
		first, err := svc.GetOrCreate(user.ID)
		testutil.AssertNoError(t, err)
		second, err := svc.GetOrCreate(user.ID)
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected same persona, got %d and %d", first.ID, second.ID)
		}

		var count int64
		db.Table("mom_personas").Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected exactly 1 persona row, got %d", count)
		}
	})
}

func TestSavePersonality(t *testing.T) {
	t.Run("stores_document", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPersonaService(db)

		user := testutil.CreateTestUser(t, db)
		persona, err := svc.SavePersonality(user.ID, []byte(`{"tone":"strict","language":"tamil"}`))
		testutil.AssertNoError(t, err)

		if string(persona.Personality) != `{"tone":"strict","language":"tamil"}` {
			t.Errorf("unexpected personality: %s", persona.Personality)
		}
	})

	t.Run("overwrites_previous_document", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPersonaService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.SavePersonality(user.ID, []byte(`{"tone":"strict"}`))
		testutil.AssertNoError(t, err)

		persona, err := svc.SavePersonality(user.ID, []byte(`{"tone":"soft"}`))
		testutil.AssertNoError(t, err)

		if string(persona.Personality) != `{"tone":"soft"}` {
			t.Errorf("expected overwritten personality, got %s", persona.Personality)
		}
	})
}

func TestGetPersonaWithVoices(t *testing.T) {
	t.Run("empty_defaults_without_persona", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPersonaService(db)

		user := testutil.CreateTestUser(t, db)
		persona, voices, err := svc.GetPersonaWithVoices(user.ID)
		testutil.AssertNoError(t, err)

		if persona.ID != 0 {
			t.Error("expected transient default persona")
		}
		if len(voices) != 0 {
			t.Errorf("expected no voices, got %d", len(voices))
		}
	})

	t.Run("returns_active_voices_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPersonaService(db)

		user := testutil.CreateTestUser(t, db)
		persona := testutil.CreateTestPersona(t, db, user.ID)
		testutil.CreateTestVoiceAsset(t, db, persona.ID, user.ID)
		inactive := testutil.CreateTestVoiceAsset(t, db, persona.ID, user.ID)
		db.Model(inactive).Update("is_active", false)

		_, voices, err := svc.GetPersonaWithVoices(user.ID)
		testutil.AssertNoError(t, err)

		if len(voices) != 1 {
			t.Errorf("expected 1 active voice, got %d", len(voices))
		}
	})
}
