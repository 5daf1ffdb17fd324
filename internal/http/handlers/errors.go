package handlers

import (
	"net/http"

	"tripbook/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case domain.IsCredentials(err):
		RespondError(c, http.StatusBadRequest, "Invalid credentials")
	case domain.IsUnauthenticated(err):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "internal error")
	}
}
