package routes

import (
	admincontroller "github.com/CGDEV2002/Brecho-CataRoupas/controllers/admin"
	"github.com/CGDEV2002/Brecho-CataRoupas/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the management screens. Everything except the
// login endpoints requires the session's admin flag.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")

	admin.GET("/login", admincontroller.LoginScreen())
	admin.POST("/login", admincontroller.Login(db, admincontroller.EnvAuthenticator()))
	admin.POST("/logout", admincontroller.Logout(db))

	gated := admin.Group("")
	gated.Use(middleware.RequireAdmin(db))
	{
		gated.GET("/dashboard", admincontroller.Dashboard(db))

		products := gated.Group("/produtos")
		{
			products.POST("", admincontroller.SaveProduct(db))
			products.POST("/:id", admincontroller.SaveProduct(db))
			products.POST("/:id/delete", admincontroller.DeleteProduct(db))
			products.GET("/export", admincontroller.ExportProducts(db))
		}

		gated.POST("/categorias", admincontroller.CreateCategory(db))
	}
}
