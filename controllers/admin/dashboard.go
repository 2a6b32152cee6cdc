package admincontroller

import (
	"net/http"

	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dashboard lists every product, available or not, newest first, with the
// aggregate counts the admin screen shows.
//
// GET /admin/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		available := 0
		for _, product := range products {
			if product.Available {
				available++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"produtos":             products,
			"categorias":           categories,
			"total_produtos":       len(products),
			"produtos_disponiveis": available,
		})
	}
}
