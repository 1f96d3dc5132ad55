package api

import (
	"errors"
	"net/http"

	"fitfusion/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates a service-layer error into an HTTP response.
// Anything unrecognized becomes a 500 with a generic message; internals are
// never leaked to the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrUnsupportedImage):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrCannotDeleteSelf):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
