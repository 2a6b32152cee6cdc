package apicontroller

import (
	"net/http"
	"strconv"

	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultPageSize = 12

// ProductSummary is the trimmed projection used by list-style responses.
type ProductSummary struct {
	ID           uint             `json:"id"`
	Name         string           `json:"nome"`
	Slug         string           `json:"slug"`
	Price        decimal.Decimal  `json:"preco"`
	CategoryName string           `json:"categoria_nome"`
	Size         string           `json:"tamanho"`
	Condition    models.Condition `json:"condicao"`
	Image        string           `json:"imagem"`
}

const summaryColumns = "products.id, products.name, products.slug, products.price, " +
	"categories.name AS category_name, products.size, products.condition, products.image"

func summaryQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Select(summaryColumns).
		Where("products.available = ?", true)
}

// GetProducts lists available products with the API's filter surface.
//
// GET /api/produtos?categoria=<id>&tamanho=&condicao=&busca=&ordering=preco|-preco&page=&page_size=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := summaryQuery(db)

		if categoryID := c.Query("categoria"); categoryID != "" {
			id, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoria"})
				return
			}
			query = query.Where("products.category_id = ?", uint(id))
		}
		if size := c.Query("tamanho"); size != "" {
			query = query.Where("products.size = ?", size)
		}
		if condition := c.Query("condicao"); condition != "" {
			query = query.Where("products.condition = ?", condition)
		}
		if search := c.Query("busca"); search != "" {
			pattern := "%" + search + "%"
			query = query.Where("LOWER(products.name) LIKE LOWER(?) OR LOWER(products.description) LIKE LOWER(?)", pattern, pattern)
		}

		switch c.Query("ordering") {
		case "preco":
			query = query.Order("products.price asc")
		case "-preco":
			query = query.Order("products.price desc")
		default:
			query = query.Order("products.id")
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
		pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
		if err != nil || pageSize < 1 {
			pageSize = defaultPageSize
		}

		var products []ProductSummary
		if err := query.Limit(pageSize).Offset((page - 1) * pageSize).Scan(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []ProductSummary{}
		}

		c.JSON(http.StatusOK, gin.H{"count": count, "results": products})
	}
}

// GetProductBySlug returns the full projection of one available product,
// including the parent category name.
//
// GET /api/produtos/:slug
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		err := db.Preload("Category").Preload("Images").
			First(&product, "slug = ? AND available = ?", c.Param("slug"), true).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		c.JSON(http.StatusOK, detailResponse(product))
	}
}

func detailResponse(product models.Product) gin.H {
	return gin.H{
		"id":             product.ID,
		"nome":           product.Name,
		"slug":           product.Slug,
		"descricao":      product.Description,
		"preco":          product.Price,
		"categoria":      product.CategoryID,
		"categoria_nome": product.Category.Name,
		"tamanho":        product.Size,
		"condicao":       product.Condition,
		"disponivel":     product.Available,
		"imagem":         product.Image,
		"imagens":        product.Images,
	}
}

// GetProductsByCategory groups available products per category, at most four
// per group.
//
// GET /api/produtos/por-categoria
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		groups := make([]gin.H, 0, len(categories))
		for _, category := range categories {
			var products []ProductSummary
			if err := summaryQuery(db).
				Where("products.category_id = ?", category.ID).
				Order("products.id").Limit(4).Scan(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}
			if products == nil {
				products = []ProductSummary{}
			}
			groups = append(groups, gin.H{
				"categoria": category.Name,
				"slug":      category.Slug,
				"produtos":  products,
			})
		}

		c.JSON(http.StatusOK, groups)
	}
}

// GetFeaturedProducts returns a random sample of six available products.
//
// GET /api/produtos/destaque
func GetFeaturedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []ProductSummary
		if err := summaryQuery(db).Order("RANDOM()").Limit(6).Scan(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []ProductSummary{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// ProductInput is the JSON payload for API product writes.
type ProductInput struct {
	Name        string          `json:"nome" binding:"required"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	CategoryID  uint            `json:"categoria" binding:"required"`
	Size        string          `json:"tamanho"`
	Condition   string          `json:"condicao"`
	Available   *bool           `json:"disponivel"`
	Image       string          `json:"imagem"`
}

func (in ProductInput) validate(db *gorm.DB) (models.Category, string) {
	var category models.Category
	if in.Price.IsNegative() {
		return category, "preco must not be negative"
	}
	if in.Condition != "" && !models.ValidCondition(in.Condition) {
		return category, "Invalid condicao"
	}
	if err := db.First(&category, in.CategoryID).Error; err != nil {
		return category, "Categoria não encontrada"
	}
	return category, ""
}

// CreateProduct creates a product through the API. Admin only.
//
// POST /api/produtos
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if _, msg := input.validate(db); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Slug:        slug.Make(input.Name),
			Description: input.Description,
			Price:       input.Price,
			CategoryID:  input.CategoryID,
			Size:        input.Size,
			Condition:   models.Condition(input.Condition),
			Available:   true,
			Image:       input.Image,
		}
		if input.Condition == "" {
			product.Condition = models.ConditionNew
		}
		if input.Available != nil {
			product.Available = *input.Available
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct updates a product through the API. Admin only.
//
// PUT /api/produtos/:slug
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "slug = ?", c.Param("slug")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if _, msg := input.validate(db); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		// The slug is never regenerated: public URLs reference it.
		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.CategoryID = input.CategoryID
		product.Size = input.Size
		if input.Condition != "" {
			product.Condition = models.Condition(input.Condition)
		}
		if input.Available != nil {
			product.Available = *input.Available
		}
		if input.Image != "" {
			product.Image = input.Image
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct removes a product through the API. Admin only.
//
// DELETE /api/produtos/:slug
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "slug = ?", c.Param("slug")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Produto excluído com sucesso!"})
	}
}
