package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondError writes the failure body used across the API: {"error": "..."}.
func RespondError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"error": msg,
	})
}

// RespondMessage writes a bare {"message": "..."} body. The payment webhook
// endpoint answers in this shape regardless of outcome.
func RespondMessage(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"message": msg,
	})
}
