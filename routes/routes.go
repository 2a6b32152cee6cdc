package routes

import (
	"github.com/CGDEV2002/Brecho-CataRoupas/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront, API,
// cart, checkout and admin route groups. Every route runs behind the
// session middleware.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.Session(db))

	SetupStoreRoutes(r, db)
	SetupAPIRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupAdminRoutes(r, db)
}
