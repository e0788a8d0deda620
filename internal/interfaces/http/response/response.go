package response

import (
	domainerrors "bookworm.backend/internal/domain/errors"
	"github.com/gin-gonic/gin"
)

// Success sends a success response. Payloads carry "success": true
// alongside whatever fields the handler adds.
func Success(c *gin.Context, status int, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error sends a failure response shaped {"success": false, "message": ...}.
// The status comes from the AppError; anything else is an internal error.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"success": false,
		"message": appErr.Message,
	})
}

// ErrorWithStatus sends a failure response with an explicit status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
