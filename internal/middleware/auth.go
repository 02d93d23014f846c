package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/irankiai/cinema-admin/internal/identity"
	"github.com/irankiai/cinema-admin/internal/model"
)

const (
	principalKey = "principal_id"
	profileKey   = "profile"
)

// Auth validates the bearer access token and stores the principal id for
// downstream middleware and handlers.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": "error",
				"kind":   "unauthenticated",
			})
			return
		}
		principalID, err := identity.ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": "error",
				"kind":   "unauthenticated",
			})
			return
		}
		c.Set(principalKey, principalID)
		c.Next()
	}
}

// Principal returns the authenticated principal id stored by Auth.
func Principal(c *gin.Context) (uint, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Profile returns the principal's profile stored by RequireRole.
func Profile(c *gin.Context) (*model.UserProfile, bool) {
	v, ok := c.Get(profileKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*model.UserProfile)
	return p, ok
}
