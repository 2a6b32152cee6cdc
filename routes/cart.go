package routes

import (
	cartcontroller "github.com/CGDEV2002/Brecho-CataRoupas/controllers/cart"
	checkoutcontroller "github.com/CGDEV2002/Brecho-CataRoupas/controllers/checkout"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the session cart and the checkout flow.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/carrinho")
	{
		cart.GET("", cartcontroller.ViewCart(db))
		cart.GET("/count", cartcontroller.Count(db))
		cart.POST("/adicionar/:produto_id", cartcontroller.AddItem(db))
		cart.POST("/atualizar/:item_id", cartcontroller.UpdateQuantity(db))
		cart.POST("/remover/:item_id", cartcontroller.RemoveItem(db))

		cart.GET("/finalizar", checkoutcontroller.Review(db))
		cart.POST("/finalizar", checkoutcontroller.Submit(db))
	}
}
