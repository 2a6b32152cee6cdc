package routes

import (
	catalogcontroller "github.com/CGDEV2002/Brecho-CataRoupas/controllers/catalog"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the public storefront surface.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", catalogcontroller.ListProducts(db))
	r.GET("/produto/:slug", catalogcontroller.ProductDetail(db))
}
