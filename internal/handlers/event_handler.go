package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "serenai/internal/errors"
	"serenai/internal/pagination"
	"serenai/internal/services"
)

// EventHandler handles behavioral event history requests
type EventHandler struct {
	eventService services.EventServicer
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService services.EventServicer) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventQuery represents the event history query parameters.
type EventQuery struct {
	pagination.PageRequest
	Severity string `form:"severity" binding:"omitempty,severity"`
}

// GetEvents returns a page of the user's event history
// @Summary     Get event history
// @Description Get the authenticated user's behavioral events, newest first
// @Tags        events
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       severity query string false "Filter by severity (low, medium, high)"
// @Success     200 {object} pagination.PageResponse[models.Event] "Event page"
// @Failure     400 {object} ErrorResponse "Invalid pagination or severity"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/events [get]
func (h *EventHandler) GetEvents(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query EventQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	events, err := h.eventService.ListUserEvents(userID, query.Severity, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}
