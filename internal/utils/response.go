// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message tags kept byte-for-byte compatible with the legacy API.
const (
	MsgSuccess      = "SUCCESS"
	MsgKeyError     = "KEY_ERROR"
	MsgTypeError    = "TYPE_ERROR"
	MsgValueError   = "VALUE_ERROR"
	MsgInvalidError = "INVALID_ERROR"
	MsgUnauthorized = "UNAUTHORIZED"
	MsgForbidden    = "FORBIDDEN"
)

// MessageResponse writes the lowercase "message" envelope used by every
// endpoint except review creation.
func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ReviewMessageResponse writes the uppercase "MESSAGE" envelope. The review
// POST endpoint has always used this casing and clients match on it.
func ReviewMessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"MESSAGE": message})
}

func KeyErrorResponse(c *gin.Context) {
	MessageResponse(c, http.StatusBadRequest, MsgKeyError)
}

func TypeErrorResponse(c *gin.Context) {
	MessageResponse(c, http.StatusBadRequest, MsgTypeError)
}

func ValueErrorResponse(c *gin.Context) {
	MessageResponse(c, http.StatusNotFound, MsgValueError)
}

func UnauthorizedResponse(c *gin.Context) {
	MessageResponse(c, http.StatusUnauthorized, MsgUnauthorized)
}

func ForbiddenResponse(c *gin.Context) {
	MessageResponse(c, http.StatusForbidden, MsgForbidden)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	MessageResponse(c, http.StatusInternalServerError, message)
}

func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(uint); ok {
			return id, true
		}
	}
	return 0, false
}

func GetAccountFromContext(c *gin.Context) (string, bool) {
	if account, exists := c.Get("account"); exists {
		if accountStr, ok := account.(string); ok {
			return accountStr, true
		}
	}
	return "", false
}
