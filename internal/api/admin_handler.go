package api

import (
	"fmt"
	"net/http"
	"strconv"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler holds the admin service dependency.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers returns one page of all registered users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.adminService.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteUser removes a user and all of their owned data.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, targetID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), adminID, targetID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateRoleRequest is the payload for changing a user's role.
type UpdateRoleRequest struct {
	Role domain.Role `json:"role" binding:"required,oneof=client trainer admin"`
}

// UpdateUserRole changes a user's role.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	_, targetID, ok := callerAndParamID(c)
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.adminService.UpdateUserRole(c.Request.Context(), targetID, req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetStats returns headline counts for the admin dashboard.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.GetStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
