package admincontroller

import (
	"net/http"

	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CreateCategory adds a category; the slug is derived from the name.
//
// POST /admin/categorias  (form: nome)
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("nome")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nome is required"})
			return
		}

		category := models.Category{
			Name: name,
			Slug: slug.Make(name),
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Categoria criada com sucesso!", "categoria": category})
	}
}
