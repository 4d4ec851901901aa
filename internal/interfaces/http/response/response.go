package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "shipping-bridge.backend/internal/domain/errors"
)

// Success writes data as-is with the given status.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error writes the uniform error envelope. AppError drives the status;
// anything else is a 500 with a generic message.
func Error(c *gin.Context, err error) {
	c.JSON(statusAndMessage(err))
}

// AbortWithError writes the error envelope and stops the handler chain.
// Middlewares use this so downstream handlers never run unauthenticated.
func AbortWithError(c *gin.Context, err error) {
	status, body := statusAndMessage(err)
	c.AbortWithStatusJSON(status, body)
}

func statusAndMessage(err error) (int, gin.H) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Status, gin.H{"success": false, "error": appErr.Message}
	}
	return http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"}
}
