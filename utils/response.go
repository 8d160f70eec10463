package utils

import (
	"github.com/gin-gonic/gin"
)

// The public API always answers with a boolean status flag and a human
// readable message, never a bare HTTP error page.

func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  true,
		"message": message,
	})
}

func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  false,
		"message": message,
	})
}

// ValidateRequestBody binds the JSON body and answers 400 on failure
func ValidateRequestBody(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		SendError(c, 400, "Invalid input: "+err.Error())
		return false
	}
	return true
}
