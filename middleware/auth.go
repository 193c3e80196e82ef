// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"consultify/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates administrator routes behind the signed
// bearer token issued at login. The Authorization header may carry the
// raw token or a "Bearer <token>" form; any verification failure blocks
// the request with 401.
func AdminAuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			utils.AbortFail(c, http.StatusUnauthorized, "Invalid or missing token")
			return
		}

		token, err := tokens.Validate(tokenString)
		if err != nil || !token.Valid {
			utils.AbortFail(c, http.StatusUnauthorized, "Invalid or missing token")
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
