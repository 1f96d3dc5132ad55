package api

import (
	"fmt"
	"net/http"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler holds the template service dependency.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// TemplateRequest is the create/update payload for a workout template.
type TemplateRequest struct {
	Name            string                `json:"name" binding:"required"`
	Description     string                `json:"description"`
	DurationMinutes int                   `json:"durationMinutes"`
	Entries         []domain.WorkoutEntry `json:"entries"`
}

func (r TemplateRequest) toDomain() domain.WorkoutTemplate {
	return domain.WorkoutTemplate{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Entries:         r.Entries,
	}
}

// List returns the caller's templates.
func (h *TemplateHandler) List(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	templates, err := h.templateService.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// Create adds a new template for the caller.
func (h *TemplateHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	tpl, err := h.templateService.Create(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// Update replaces a template owned by the caller.
func (h *TemplateHandler) Update(c *gin.Context) {
	userID, templateID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	tpl, err := h.templateService.Update(c.Request.Context(), userID, templateID, req.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// Delete removes a template owned by the caller.
func (h *TemplateHandler) Delete(c *gin.Context) {
	userID, templateID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), userID, templateID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Instantiate creates a workout from a template, dated now.
func (h *TemplateHandler) Instantiate(c *gin.Context) {
	userID, templateID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	workout, err := h.templateService.Instantiate(c.Request.Context(), userID, templateID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}
