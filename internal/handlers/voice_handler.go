package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "serenai/internal/errors"
	"serenai/internal/services"
)

// maxMultipartMemory bounds how much of a multipart body Gin keeps in
// memory before spilling to temp files.
const maxMultipartMemory = 32 << 20

// VoiceHandler handles voice sample uploads and listing
type VoiceHandler struct {
	voiceService services.VoiceServicer
}

// NewVoiceHandler creates a new VoiceHandler
func NewVoiceHandler(voiceService services.VoiceServicer) *VoiceHandler {
	return &VoiceHandler{voiceService: voiceService}
}

// UploadVoice accepts a multipart batch of audio samples
// @Summary     Upload voice samples
// @Description Upload one or more audio files with consent; rejects non-audio or oversize files
// @Tags        voice
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       consent formData bool true "Consent to store voice samples"
// @Param       files formData file true "Audio files"
// @Success     200 {object} map[string][]string "Stored filenames"
// @Failure     400 {object} ErrorResponse "Missing consent, empty batch, non-audio MIME, or oversize file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/mom/upload_voice [post]
func (h *VoiceHandler) UploadVoice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid multipart form"))
		return
	}
	form := c.Request.MultipartForm

	consent := false
	if values := form.Value["consent"]; len(values) > 0 {
		consent, _ = strconv.ParseBool(values[0])
	}

	assets, err := h.voiceService.UploadBatch(userID, consent, form.File["files"])
	if err != nil {
		respondWithError(c, err)
		return
	}

	stored := make([]string, 0, len(assets))
	for _, asset := range assets {
		stored = append(stored, asset.StoredName)
	}

	c.JSON(http.StatusOK, gin.H{"stored": stored})
}

// ListVoices returns a user's active voice assets
// @Summary     List voice assets
// @Description List the active voice assets of a user; callers may only list their own
// @Tags        voice
// @Produce     json
// @Security    BearerAuth
// @Param       user_id path int true "User ID"
// @Success     200 {object} map[string][]models.VoiceAsset "Voice assets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Foreign user ID"
// @Router      /api/list_voices/{user_id} [get]
func (h *VoiceHandler) ListVoices(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	requestedID, err := parsePathID(c, "user_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Voice files are personal data: no enumerating other users.
	if requestedID != userID {
		respondWithError(c, apperrors.ErrForbidden)
		return
	}

	voices, err := h.voiceService.ListUserVoices(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"voices": voices})
}
