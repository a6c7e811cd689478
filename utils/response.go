package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	JSONErrorDetails(c, status, err, message, nil)
}

// JSONErrorDetails sends a structured error response with extra fields under "details"
func JSONErrorDetails(c *gin.Context, status int, err error, message string, details gin.H) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if len(details) > 0 {
		body["details"] = details
	}
	c.AbortWithStatusJSON(status, body)
}
