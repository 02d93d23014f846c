package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/repository"
)

// RequireRole resolves the principal's profile on every request and allows
// it through only when the profile's type is in the allowed set. A missing
// profile, or one whose type was never assigned, is allowed nowhere. The
// profile is stored for handlers that need the actor.
func RequireRole(profiles repository.UserProfileRepo, roles ...model.UserType) gin.HandlerFunc {
	allowed := make(map[model.UserType]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		principalID, ok := Principal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": "error",
				"kind":   "unauthenticated",
			})
			return
		}
		profile, err := profiles.GetByID(principalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"status": "error",
					"kind":   "permission_denied",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status": "error",
				"kind":   "store_failure",
			})
			return
		}
		if !allowed[profile.Type] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status": "error",
				"kind":   "permission_denied",
			})
			return
		}
		c.Set(profileKey, profile)
		c.Next()
	}
}
