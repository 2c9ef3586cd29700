package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "serenai/internal/errors"
	"serenai/internal/services"
)

// ProfileHandler handles user profile requests
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest represents the profile upsert payload. All fields are
// optional; omitted fields leave stored values untouched.
type ProfileRequest struct {
	FullName    string          `json:"full_name" binding:"max=255"`
	DOB         string          `json:"dob" binding:"omitempty,dateonly"`
	Preferences json.RawMessage `json:"preferences"`
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile, or empty defaults if none saved
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.UserProfile "Profile fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// SaveProfile upserts the user's profile
// @Summary     Save user profile
// @Description Upsert the authenticated user's profile fields
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ProfileRequest true "Profile fields"
// @Success     200 {object} map[string]uint "Upserted profile id"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/profile [post]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.SaveProfile(userID, req.FullName, req.DOB, req.Preferences)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": profile.ID})
}
