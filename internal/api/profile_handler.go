package api

import (
	"fmt"
	"net/http"

	"fitfusion/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Largest accepted profile picture upload.
const maxProfilePictureBytes = 5 << 20 // 5 MiB

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetMe returns the authenticated user's own profile.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMe replaces the authenticated user's mutable profile fields.
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req service.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadPicture accepts a multipart form with a "profilePicture" file field,
// stores the image, and returns the URL it is served from.
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	fileHeader, err := c.FormFile("profilePicture")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "A profilePicture file field is required")
		return
	}
	if fileHeader.Size > maxProfilePictureBytes {
		abortWithError(c, http.StatusBadRequest, "Profile picture must be 5MB or smaller")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	url, err := h.profileService.SetProfilePicture(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profilePicture": url})
}

// ListTrainers returns the public trainer directory.
func (h *ProfileHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.profileService.ListTrainers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}
