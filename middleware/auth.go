// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"medicare/utils"

	"github.com/gin-gonic/gin"
)

// EmailContextKey is where VerifyJWT stores the decoded patient email.
const EmailContextKey = "decodedEmail"

// VerifyJWT validates the bearer token and stores the decoded email in the
// request context for downstream handlers.
func VerifyJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		c.Set(EmailContextKey, email)
		c.Next()
	}
}

// DecodedEmail returns the email VerifyJWT stored in the context.
func DecodedEmail(c *gin.Context) string {
	email, _ := c.Get(EmailContextKey)
	emailStr, _ := email.(string)
	return emailStr
}
