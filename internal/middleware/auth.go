package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token and puts the current user into
// the context. A missing or invalid token is an authorization failure (403),
// distinct from the credential mismatch auth endpoints answer with 401.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// 2) query parameter ?token=xxx, for export downloads where a
		// custom header cannot be set
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			util.Fail(c, apperr.Authorization("missing token"))
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Fail(c, apperr.Authorization("invalid or expired token"))
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				util.Fail(c, apperr.Authorization("invalid or expired token"))
			} else {
				util.Error(c, http.StatusInternalServerError, "lookup user failed")
			}
			c.Abort()
			return
		}

		c.Set("currentUser", &user)
		c.Next()
	}
}
