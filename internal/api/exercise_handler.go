package api

import (
	"fmt"
	"net/http"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ExerciseRequest is the create/update payload for a library exercise.
type ExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscleGroup"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

func (r ExerciseRequest) toDomain() domain.Exercise {
	return domain.Exercise{
		Name:        r.Name,
		MuscleGroup: r.MuscleGroup,
		Description: r.Description,
		Difficulty:  r.Difficulty,
	}
}

// List returns the caller's exercise library.
func (h *ExerciseHandler) List(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	exercises, err := h.exerciseService.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// Create adds an exercise to the caller's library.
func (h *ExerciseHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// Update replaces an exercise owned by the caller.
func (h *ExerciseHandler) Update(c *gin.Context) {
	userID, exerciseID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.exerciseService.Update(c.Request.Context(), userID, exerciseID, req.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// Delete removes an exercise owned by the caller.
func (h *ExerciseHandler) Delete(c *gin.Context) {
	userID, exerciseID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	if err := h.exerciseService.Delete(c.Request.Context(), userID, exerciseID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// callerAndParamID is the shared caller + ":id" extraction used by the
// owner-scoped resource handlers.
func callerAndParamID(c *gin.Context) (primitive.ObjectID, primitive.ObjectID, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	resourceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid resource ID")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return userID, resourceID, true
}
