package apicontroller

import (
	"net/http"

	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategorySummary carries a category plus its available-product count.
type CategorySummary struct {
	ID            uint   `json:"id"`
	Name          string `json:"nome"`
	Slug          string `json:"slug"`
	ProductsCount int64  `json:"produtos_count"`
}

func availableCount(db *gorm.DB, categoryID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Product{}).
		Where("category_id = ? AND available = ?", categoryID, true).
		Count(&count).Error
	return count, err
}

// GetCategories lists every category with its available-product count.
//
// GET /api/categorias
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		summaries := make([]CategorySummary, 0, len(categories))
		for _, category := range categories {
			count, err := availableCount(db, category.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
				return
			}
			summaries = append(summaries, CategorySummary{
				ID:            category.ID,
				Name:          category.Name,
				Slug:          category.Slug,
				ProductsCount: count,
			})
		}

		c.JSON(http.StatusOK, summaries)
	}
}

// GetCategoryBySlug returns one category with its available-product count.
//
// GET /api/categorias/:slug
func GetCategoryBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "slug = ?", c.Param("slug")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}

		count, err := availableCount(db, category.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		c.JSON(http.StatusOK, CategorySummary{
			ID:            category.ID,
			Name:          category.Name,
			Slug:          category.Slug,
			ProductsCount: count,
		})
	}
}
