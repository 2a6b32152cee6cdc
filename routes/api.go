package routes

import (
	apicontroller "github.com/CGDEV2002/Brecho-CataRoupas/controllers/api"
	"github.com/CGDEV2002/Brecho-CataRoupas/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAPIRoutes registers the read-mostly REST surface. Writes sit behind
// the same admin gate the management screens use.
func SetupAPIRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		products := api.Group("/produtos")
		{
			products.GET("", apicontroller.GetProducts(db))
			products.GET("/por-categoria", apicontroller.GetProductsByCategory(db))
			products.GET("/destaque", apicontroller.GetFeaturedProducts(db))
			products.GET("/:slug", apicontroller.GetProductBySlug(db))

			products.POST("", middleware.RequireAdmin(db), apicontroller.CreateProduct(db))
			products.PUT("/:slug", middleware.RequireAdmin(db), apicontroller.UpdateProduct(db))
			products.DELETE("/:slug", middleware.RequireAdmin(db), apicontroller.DeleteProduct(db))
		}

		categories := api.Group("/categorias")
		{
			categories.GET("", apicontroller.GetCategories(db))
			categories.GET("/:slug", apicontroller.GetCategoryBySlug(db))
		}
	}
}
