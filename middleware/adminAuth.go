package middleware

import (
	"net/http"
	"time"

	"medicare/services/user"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const (
	roleCacheTTL = 5 * time.Minute
	roleAdmin    = "admin"
	roleUser     = "user"
)

// VerifyAdmin authorizes admin-only operations. It resolves the role of
// the email VerifyJWT decoded, consulting the Redis auth cache before the
// Users collection. Must run after VerifyJWT.
func VerifyAdmin(userService user.UserService, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := DecodedEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		if cache != nil {
			cached, err := cache.Get(c.Request.Context(), utils.RoleCacheKey(email)).Result()
			if err == nil {
				if cached != roleAdmin {
					c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
					return
				}
				c.Next()
				return
			}
		}

		isAdmin, err := userService.IsAdmin(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		if cache != nil {
			role := roleUser
			if isAdmin {
				role = roleAdmin
			}
			_ = cache.Set(c.Request.Context(), utils.RoleCacheKey(email), role, roleCacheTTL).Err()
		}

		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}
		c.Next()
	}
}
