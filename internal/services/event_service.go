package services

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "serenai/internal/errors"
	"serenai/internal/models"
	"serenai/internal/pagination"
)

// eventService handles the append-only behavioral event log.
type eventService struct {
	db *gorm.DB
}

// NewEventService creates a new EventServicer.
func NewEventService(db *gorm.DB) EventServicer {
	return &eventService{db: db}
}

// Record appends one event. Unlike a fire-and-forget audit trail, the
// write must succeed: chat escalation decisions depend on these rows.
func (s *eventService) Record(userID uint, eventType, eventKey, severity, source string, context map[string]interface{}) (*models.Event, error) {
	event := &models.Event{
		UserID:     userID,
		EventType:  eventType,
		EventKey:   eventKey,
		Severity:   severity,
		Source:     source,
		OccurredAt: time.Now(),
	}

	if context != nil {
		data, err := json.Marshal(context)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		event.Context = datatypes.JSON(data)
	}

	if err := s.db.Create(event).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return event, nil
}

// CountRecentByKey counts the user's events with the given key among
// the most recent `window` matches, newest first. The result saturates
// at window.
func (s *eventService) CountRecentByKey(userID uint, eventKey string, window int) (int, error) {
	var events []models.Event
	if err := s.db.Where("user_id = ? AND event_key = ?", userID, eventKey).
		Order("occurred_at DESC").Limit(window).Find(&events).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return len(events), nil
}

// ListUserEvents returns a page of the user's events, newest first. An
// empty severity means no filter.
func (s *eventService) ListUserEvents(userID uint, severity string, page pagination.PageRequest) (*pagination.PageResponse[models.Event], error) {
	page.Defaults()

	filter := func() *gorm.DB {
		q := s.db.Model(&models.Event{}).Where("user_id = ?", userID)
		if severity != "" {
			q = q.Where("severity = ?", severity)
		}
		return q
	}

	var total int64
	if err := filter().Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var events []models.Event
	if err := filter().Order("occurred_at DESC").
		Scopes(pagination.Paginate(page)).Find(&events).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(events, page.Page, page.PageSize, total)
	return &resp, nil
}
