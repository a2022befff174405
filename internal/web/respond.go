package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/errors"
)

// respondError maps the application error taxonomy onto HTTP statuses:
// NotFound → 404, Validation and InvalidInput → 400, everything else
// (store failures included) → 500 with a generic message.
func respondError(c *gin.Context, err error) {
	if errors.ShouldLogError(err) {
		log.Printf("request failed: %v", err)
	}

	status := http.StatusInternalServerError
	switch {
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		status = http.StatusNotFound
	case errors.IsErrorType(err, errors.ErrorTypeValidation),
		errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{
		"error": errors.GetUserMessage(err),
		"code":  errors.GetErrorCode(err),
	})
}

// respondBadRequest rejects structurally malformed input (unbindable
// bodies, missing required keys) before it reaches the services.
func respondBadRequest(c *gin.Context, reason string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": reason,
		"code":  "INVALID_INPUT",
	})
}
