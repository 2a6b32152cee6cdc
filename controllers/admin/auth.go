package admincontroller

import (
	"net/http"
	"os"

	"github.com/CGDEV2002/Brecho-CataRoupas/middleware"
	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Authenticator decides whether a submitted credential grants admin access.
// The admin handlers only ever see this interface, so the shared-password
// check below can be swapped for a real credential store without touching
// them.
type Authenticator interface {
	Authenticate(password string) bool
}

// PasswordAuthenticator compares against a single shared secret.
type PasswordAuthenticator struct {
	Password string
}

func (a PasswordAuthenticator) Authenticate(password string) bool {
	return password == a.Password
}

// EnvAuthenticator builds the authenticator from ADMIN_PASSWORD.
func EnvAuthenticator() Authenticator {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	return PasswordAuthenticator{Password: password}
}

// Login marks the current session as admin when the password matches.
//
// POST /admin/login  (form: senha)
func Login(db *gorm.DB, auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.Authenticate(c.PostForm("senha")) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha incorreta!"})
			return
		}

		key := middleware.SessionKey(c)
		if err := db.Model(&models.Session{}).Where("key = ?", key).
			Update("is_admin", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Login realizado com sucesso!"})
	}
}

// Logout drops the session's admin flag.
//
// POST /admin/logout
func Logout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := middleware.SessionKey(c)
		if err := db.Model(&models.Session{}).Where("key = ?", key).
			Update("is_admin", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso!"})
	}
}

// LoginScreen is where the gate middleware sends unauthenticated requests.
//
// GET /admin/login
func LoginScreen() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Informe a senha de administrador"})
	}
}
