package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// WorkoutRequest is the create/update payload for a workout.
type WorkoutRequest struct {
	Title           string                `json:"title" binding:"required"`
	Date            time.Time             `json:"date"`
	DurationMinutes int                   `json:"durationMinutes" binding:"required,min=1"`
	Notes           string                `json:"notes"`
	Entries         []domain.WorkoutEntry `json:"entries"`
}

func (r WorkoutRequest) toDomain() domain.Workout {
	return domain.Workout{
		Title:           r.Title,
		Date:            r.Date,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		Entries:         r.Entries,
	}
}

// List returns one page of the caller's workouts.
// Query parameters: page, limit, search, sort (date|-date|duration|-duration).
func (h *WorkoutHandler) List(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	filter := domain.WorkoutFilter{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	result, err := h.workoutService.List(c.Request.Context(), userID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Create logs a new workout for the caller.
func (h *WorkoutHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// Get returns one workout owned by the caller.
func (h *WorkoutHandler) Get(c *gin.Context) {
	userID, workoutID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	workout, err := h.workoutService.Get(c.Request.Context(), userID, workoutID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// Update replaces a workout owned by the caller.
func (h *WorkoutHandler) Update(c *gin.Context) {
	userID, workoutID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), userID, workoutID, req.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// Delete removes a workout owned by the caller.
func (h *WorkoutHandler) Delete(c *gin.Context) {
	userID, workoutID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), userID, workoutID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
