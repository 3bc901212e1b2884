package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"furytails/models"
	userSvc "furytails/services/user"
	"furytails/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// AdminAuthMiddleware verifies the Firebase ID token on the Authorization
// header and requires the caller's user record to carry the admin role.
// Verified roles are cached in Redis so we don't hit Mongo on every request.
func AdminAuthMiddleware(users userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or invalid Authorization header",
			})
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")
		if idToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or invalid Authorization header",
			})
			return
		}

		if utils.AuthClient == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Authentication service unavailable",
			})
			return
		}

		token, err := utils.AuthClient.VerifyIDToken(ctx, idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			return
		}
		uid := token.UID

		cacheKey := utils.AuthCachePrefix + uid
		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil
		if !cacheEnabled {
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
		}

		if cacheEnabled {
			role, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if role != models.RoleAdmin {
					c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
						"error": "Admin access required",
					})
					return
				}
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("userID", uid)
				c.Set("isAdmin", true)
				c.Next()
				return
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: Query the database.
		isAdmin, err := users.IsAdmin(uid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "No account found for this session",
			})
			return
		}

		if cacheEnabled {
			role := models.RoleUser
			if isAdmin {
				role = models.RoleAdmin
			}
			_ = authCache.Set(ctx, cacheKey, role, utils.AuthCacheTTL).Err()
		}

		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}

		c.Set("userID", uid)
		c.Set("isAdmin", true)
		c.Next()
	}
}
