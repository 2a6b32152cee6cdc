package catalogcontroller

import (
	"net/http"
	"strconv"

	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pageSize = 12

// ListProducts is the storefront index: available products only, optionally
// narrowed by category slug and/or a case-insensitive name search, twelve
// per page.
//
// GET /?categoria=<slug>&q=<busca>&page=N
func ListProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categorySlug := c.Query("categoria")
		search := c.Query("q")

		query := db.Model(&models.Product{}).Preload("Category").Where("available = ?", true)

		if categorySlug != "" {
			var category models.Category
			if err := db.First(&category, "slug = ?", categorySlug).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada"})
				return
			}
			query = query.Where("category_id = ?", category.ID)
		}

		if search != "" {
			query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
		}

		var count int64
		if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		var products []models.Product
		if err := query.Order("id").Limit(pageSize).Offset((page - 1) * pageSize).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		totalPages := int(count) / pageSize
		if int(count)%pageSize != 0 {
			totalPages++
		}

		c.JSON(http.StatusOK, gin.H{
			"produtos":              products,
			"categorias":            categories,
			"categoria_selecionada": categorySlug,
			"busca":                 search,
			"count":                 count,
			"page":                  page,
			"total_pages":           totalPages,
		})
	}
}

// ProductDetail returns one available product by slug, plus up to four
// related products from the same category. Unavailable products 404 even
// though the row exists.
//
// GET /produto/:slug
func ProductDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var product models.Product
		err := db.Preload("Category").Preload("Images").
			First(&product, "slug = ? AND available = ?", slug, true).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var related []models.Product
		if err := db.Where("category_id = ? AND available = ? AND id <> ?", product.CategoryID, true, product.ID).
			Order("id").Limit(4).Find(&related).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch related products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"produto":               product,
			"produtos_relacionados": related,
		})
	}
}
