package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "serenai/internal/errors"
	"serenai/internal/services"
)

// PersonaHandler handles mom persona requests
type PersonaHandler struct {
	personaService services.PersonaServicer
}

// NewPersonaHandler creates a new PersonaHandler
func NewPersonaHandler(personaService services.PersonaServicer) *PersonaHandler {
	return &PersonaHandler{personaService: personaService}
}

// PersonalityRequest represents the personality upsert payload
type PersonalityRequest struct {
	Personality json.RawMessage `json:"personality" binding:"required"`
}

// SavePersonality upserts the persona's personality document
// @Summary     Save mom personality
// @Description Upsert the JSON personality document of the user's mom persona
// @Tags        persona
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PersonalityRequest true "Personality document"
// @Success     200 {object} map[string]uint "Upserted persona id"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/mom/personality [post]
func (h *PersonaHandler) SavePersonality(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PersonalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	persona, err := h.personaService.SavePersonality(userID, req.Personality)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": persona.ID})
}

// GetMomProfile returns the persona and its active voice assets
// @Summary     Get mom profile
// @Description Get the persona fields plus the list of active voice assets
// @Tags        persona
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.MomPersona "Persona and voices"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/mom/profile [get]
func (h *PersonaHandler) GetMomProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	persona, voices, err := h.personaService.GetPersonaWithVoices(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"persona": persona,
		"voices":  voices,
	})
}
