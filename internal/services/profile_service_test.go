package services

import (
	"testing"

	"serenai/internal/testutil"
)

func TestGetProfile(t *testing.T) {
	t.Run("empty_default_when_unsaved", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)

		user := testutil.CreateTestUser(t, db)
		profile, err := svc.GetProfile(user.ID)
		testutil.AssertNoError(t, err)

		if profile.ID != 0 {
			t.Error("expected unsaved profile to have zero ID")
		}
		if profile.UserID != user.ID {
			t.Errorf("expected user ID %d, got %d", user.ID, profile.UserID)
		}
		if profile.FullName != "" {
			t.Errorf("expected empty full name, got %s", profile.FullName)
		}
	})

	t.Run("returns_saved_profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.SaveProfile(user.ID, "Ravi Kumar", "1998-04-12", nil)
		testutil.AssertNoError(t, err)

		profile, err := svc.GetProfile(user.ID)
		testutil.AssertNoError(t, err)

		if profile.FullName != "Ravi Kumar" {
			t.Errorf("expected full name Ravi Kumar, got %s", profile.FullName)
		}
		if profile.DOB != "1998-04-12" {
			t.Errorf("expected DOB 1998-04-12, got %s", profile.DOB)
		}
	})
}

func TestSaveProfile(t *testing.T) {
	t.Run("creates_on_first_save", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)

		user := testutil.CreateTestUser(t, db)
		profile, err := svc.SaveProfile(user.ID, "Ravi", "", []byte(`{"food":"dosa"}`))
		testutil.AssertNoError(t, err)

		if profile.ID == 0 {
			t.Fatal("expected non-zero profile ID")
		}
		if string(profile.Preferences) != `{"food":"dosa"}` {
			t.Errorf("unexpected preferences: %s", profile.Preferences)
		}
	})

	t.Run("updates_in_place", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)

		user := testutil.CreateTestUser(t, db)
		first, err := svc.SaveProfile(user.ID, "Ravi", "", nil)
		testutil.AssertNoError(t, err)

		second, err := svc.SaveProfile(user.ID, "Ravi Kumar", "", nil)
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected update of row %d, got new row %d", first.ID, second.ID)
		}

		var count int64
		db.Table("user_profiles").Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected exactly 1 profile row, got %d", count)
		}
	})

	t.Run("empty_fields_preserve_existing_values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.SaveProfile(user.ID, "Ravi", "1998-04-12", []byte(`{"food":"dosa"}`))
		testutil.AssertNoError(t, err)

		// Update only the name; DOB and preferences stay untouched.
		profile, err := svc.SaveProfile(user.ID, "Ravi Kumar", "", nil)
		testutil.AssertNoError(t, err)

		if profile.FullName != "Ravi Kumar" {
			t.Errorf("expected updated name, got %s", profile.FullName)
		}
		if profile.DOB != "1998-04-12" {
			t.Errorf("expected DOB preserved, got %s", profile.DOB)
		}
		if string(profile.Preferences) != `{"food":"dosa"}` {
			t.Errorf("expected preferences preserved, got %s", profile.Preferences)
		}
	})
}
