package middleware

import (
	"net/http"

	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireAdmin lets a request through only when the current session has been
// marked as admin by the login handler. Anything else is sent back to the
// login screen before the gated handler runs.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := SessionKey(c)

		var session models.Session
		if err := db.First(&session, "key = ?", key).Error; err != nil || !session.IsAdmin {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
