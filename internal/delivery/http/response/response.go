package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope: {message} with optional per-field details.
type ErrorBody struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// JSON sends a success payload as-is. Success shapes vary per endpoint (raw
// entity, {message, entity}, pagination envelope) so no wrapper is imposed.
func JSON(c *gin.Context, code int, payload any) {
	c.JSON(code, payload)
}

// Message sends a bare {message} body.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// Error sends the error envelope.
func Error(c *gin.Context, code int, message string, details any) {
	c.JSON(code, ErrorBody{Message: message, Details: details})
}
