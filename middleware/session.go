package middleware

import (
	"net/http"

	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// SessionCookie is the name of the browser cookie carrying the key.
	SessionCookie = "brecho_session"

	// SessionKeyContext is the gin context key the session key is stored under.
	SessionKeyContext = "session_key"

	cookieMaxAge = 60 * 60 * 24 * 30 // 30 days
)

// Session resolves the caller's session key, creating one lazily on first
// contact. Handlers downstream read it with SessionKey(c).
func Session(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(SessionCookie)
		if err != nil || key == "" {
			key = uuid.NewString()
			if err := db.Create(&models.Session{Key: key}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
				c.Abort()
				return
			}
			c.SetCookie(SessionCookie, key, cookieMaxAge, "/", "", false, true)
		} else {
			// Re-create the row if the cookie outlived the database.
			var session models.Session
			if err := db.First(&session, "key = ?", key).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					if err := db.Create(&models.Session{Key: key}).Error; err != nil {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
						c.Abort()
						return
					}
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
					c.Abort()
					return
				}
			}
		}

		c.Set(SessionKeyContext, key)
		c.Next()
	}
}

// SessionKey returns the session key the Session middleware resolved.
func SessionKey(c *gin.Context) string {
	return c.GetString(SessionKeyContext)
}
