package services

import (
	"testing"
	"time"

	"serenai/internal/models"
	"serenai/internal/pagination"
	"serenai/internal/testutil"
)

func TestRecordEvent(t *testing.T) {
	t.Run("with_context", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEventService(db)

		user := testutil.CreateTestUser(t, db)
		event, err := svc.Record(user.ID, "mistake", "generic_mistake", models.SeverityMedium, "ai",
			map[string]interface{}{"message": "I skipped lunch"})
		testutil.AssertNoError(t, err)

		if event.ID == 0 {
			t.Fatal("expected non-zero event ID")
		}
		if event.Context == nil {
			t.Error("expected context to be stored")
		}
		if event.OccurredAt.IsZero() {
			t.Error("expected occurred_at to be set")
		}
	})

	t.Run("without_context", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEventService(db)

		user := testutil.CreateTestUser(t, db)
		event, err := svc.Record(user.ID, "emotion", "sadness", models.SeverityMedium, "ai", nil)
		testutil.AssertNoError(t, err)

		if event.Context != nil {
			t.Error("expected nil context")
		}
	})
}

func TestCountRecentByKey(t *testing.T) {
	t.Run("counts_only_matching_key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEventService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestMistakeEvents(t, db, user.ID, 2)
		testutil.CreateTestEvent(t, db, user.ID, "emotion", "sadness", models.SeverityMedium)

		count, err := svc.CountRecentByKey(user.ID, "generic_mistake", 5)
		testutil.AssertNoError(t, err)
		if count != 2 {
			t.Errorf("expected count 2, got %d", count)
		}
	})

	t.Run("saturates_at_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEventService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestMistakeEvents(t, db, user.ID, 8)

		count, err := svc.CountRecentByKey(user.ID, "generic_mistake", 5)
		testutil.AssertNoError(t, err)
		if count != 5 {
			t.Errorf("expected count to saturate at 5, got %d", count)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEventService(db)

		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		testutil.CreateTestMistakeEvents(t, db, alice.ID, 4)

		count, err := svc.CountRecentByKey(bob.ID, "generic_mistake", 5)
		testutil.AssertNoError(t, err)
		if count != 0 {
			t.Errorf("expected count 0 for other user, got %d", count)
		}
	})

	t.Run("zero_for_no_events", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEventService(db)

		count, err := svc.CountRecentByKey(12345, "generic_mistake", 5)
		testutil.AssertNoError(t, err)
		if count != 0 {
			t.Errorf("expected count 0, got %d", count)
		}
	})
}

func TestListUserEvents(t *testing.T) {
	t.Run("newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEventService(db)

		user := testutil.CreateTestUser(t, db)
		base := time.Now().Add(-time.Hour)
		for i, key := range []string{"first", "second", "third"} {
			event := &models.Event{
				UserID:     user.ID,
				EventType:  "emotion",
				EventKey:   key,
				Severity:   models.SeverityLow,
				Source:     "ai",
				OccurredAt: base.Add(time.Duration(i) * time.Minute),
			}
			if err := db.Create(event).Error; err != nil {
				t.Fatalf("failed to create event: %v", err)
			}
		}

		page, err := svc.ListUserEvents(user.ID, "", pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if len(page.Data) != 3 {
			t.Fatalf("expected 3 events, got %d", len(page.Data))
		}
		if page.Data[0].EventKey != "third" || page.Data[2].EventKey != "first" {
			t.Errorf("expected newest-first order, got %s..%s", page.Data[0].EventKey, page.Data[2].EventKey)
		}
	})

	t.Run("paginated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEventService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestMistakeEvents(t, db, user.ID, 25)

		page, err := svc.ListUserEvents(user.ID, "", pagination.PageRequest{Page: 2, PageSize: 10})
		testutil.AssertNoError(t, err)

		if len(page.Data) != 10 {
			t.Errorf("expected 10 events on page 2, got %d", len(page.Data))
		}
		if page.TotalItems != 25 {
			t.Errorf("expected total 25, got %d", page.TotalItems)
		}
		if page.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", page.TotalPages)
		}
	})

	t.Run("severity_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEventService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestEvent(t, db, user.ID, "mistake", "generic_mistake", models.SeverityMedium)
		testutil.CreateTestEvent(t, db, user.ID, "emotion", "fatigue", models.SeverityLow)
		testutil.CreateTestEvent(t, db, user.ID, "emotion", "sadness", models.SeverityMedium)

		page, err := svc.ListUserEvents(user.ID, models.SeverityMedium, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Errorf("expected 2 medium events, got %d", page.TotalItems)
		}
		for _, event := range page.Data {
			if event.Severity != models.SeverityMedium {
				t.Errorf("expected only medium events, got %s", event.Severity)
			}
		}
	})

	t.Run("empty_for_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewEventService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestMistakeEvents(t, db, user.ID, 3)

		page, err := svc.ListUserEvents(user.ID+1, "", pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 0 {
			t.Errorf("expected no events for other user, got %d", len(page.Data))
		}
	})
}
