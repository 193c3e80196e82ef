package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All endpoints answer with the same envelope the deployed clients
// already consume: {success, message?, ...payload}. Failures map to one
// status-code policy: 400 validation, 401 auth, 404 not found,
// 429 rate limit, 502 upstream dependency.

// JSONSuccess sends a success envelope with the given payload fields merged in.
func JSONSuccess(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// JSONFail sends a failure envelope with the given status and message.
func JSONFail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// AbortFail sends a failure envelope and stops the handler chain.
func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
