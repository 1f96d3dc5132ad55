package api

import (
	"fmt"
	"net/http"
	"time"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DietHandler holds the diet service dependency.
type DietHandler struct {
	dietService service.DietService
}

// NewDietHandler creates a new DietHandler.
func NewDietHandler(dietService service.DietService) *DietHandler {
	return &DietHandler{dietService: dietService}
}

// DietEntryRequest is the create/update payload for a meal log entry.
type DietEntryRequest struct {
	Date         time.Time       `json:"date"`
	MealType     domain.MealType `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Description  string          `json:"description" binding:"required"`
	Calories     int             `json:"calories"`
	ProteinGrams float64         `json:"proteinGrams"`
	CarbsGrams   float64         `json:"carbsGrams"`
	FatGrams     float64         `json:"fatGrams"`
}

func (r DietEntryRequest) toDomain() domain.DietEntry {
	return domain.DietEntry{
		Date:         r.Date,
		MealType:     r.MealType,
		Description:  r.Description,
		Calories:     r.Calories,
		ProteinGrams: r.ProteinGrams,
		CarbsGrams:   r.CarbsGrams,
		FatGrams:     r.FatGrams,
	}
}

// List returns the caller's diet entries; optional from/to query parameters
// (RFC 3339 dates) bound the range.
func (h *DietHandler) List(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var from, to time.Time
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse(time.RFC3339, v); err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid 'from' date; use RFC 3339 format")
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse(time.RFC3339, v); err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid 'to' date; use RFC 3339 format")
			return
		}
	}

	entries, err := h.dietService.List(c.Request.Context(), userID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create logs a new meal for the caller.
func (h *DietHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req DietEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.dietService.Create(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Update replaces a diet entry owned by the caller.
func (h *DietHandler) Update(c *gin.Context) {
	userID, entryID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	var req DietEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.dietService.Update(c.Request.Context(), userID, entryID, req.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete removes a diet entry owned by the caller.
func (h *DietHandler) Delete(c *gin.Context) {
	userID, entryID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	if err := h.dietService.Delete(c.Request.Context(), userID, entryID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
