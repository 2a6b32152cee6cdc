package admincontroller

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const productPublicPath = "/uploads/products"

func uploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

func saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	saveDir := filepath.Join(uploadsDir(), "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", productPublicPath, filename), nil
}

// imageOp is one entry of the product form's image collection: either a new
// upload or an existing row marked for removal. Entries carrying neither are
// dropped at parse time.
type imageOp struct {
	add    *multipart.FileHeader
	delete uint
}

func parseImageOps(c *gin.Context) ([]imageOp, error) {
	var ops []imageOp

	// Submissions without uploads may not be multipart at all.
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["imagens"] {
			ops = append(ops, imageOp{add: file})
		}
	}
	for _, raw := range c.PostFormArray("remover_imagens") {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid image id %q", raw)
		}
		ops = append(ops, imageOp{delete: uint(id)})
	}

	return ops, nil
}

// SaveProduct handles both the create form (no :id) and the edit form. The
// main record is saved first; every image operation of the submission is
// then applied in the same transaction with the saved product as owner.
//
// POST /admin/produtos
// POST /admin/produtos/:id
func SaveProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if idParam := c.Param("id"); idParam != "" {
			if err := db.First(&product, idParam).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
				return
			}
		}

		name := c.PostForm("nome")
		priceStr := c.PostForm("preco")
		categoryStr := c.PostForm("categoria")
		if name == "" || priceStr == "" || categoryStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nome, preco and categoria are required"})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preco"})
			return
		}

		categoryID, err := strconv.ParseUint(categoryStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoria"})
			return
		}
		var category models.Category
		if err := db.First(&category, uint(categoryID)).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Categoria não encontrada"})
			return
		}

		condition := c.PostForm("condicao")
		if condition != "" && !models.ValidCondition(condition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid condicao"})
			return
		}

		imageOps, err := parseImageOps(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image data: " + err.Error()})
			return
		}

		product.Name = name
		product.Description = c.PostForm("descricao")
		product.Price = price
		product.CategoryID = category.ID
		product.Size = c.PostForm("tamanho")
		if condition != "" {
			product.Condition = models.Condition(condition)
		} else if product.ID == 0 {
			product.Condition = models.ConditionNew
		}
		product.Available = c.PostForm("disponivel") != "false"
		if product.ID == 0 {
			// The slug is minted once; renames never touch published URLs.
			product.Slug = slug.Make(name)
		}

		if file, err := c.FormFile("imagem"); err == nil {
			imageURL, err := saveUpload(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = imageURL
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			for _, op := range imageOps {
				if op.add != nil {
					imageURL, err := saveUpload(c, op.add)
					if err != nil {
						return err
					}
					image := models.ProductImage{ProductID: product.ID, Image: imageURL}
					if err := tx.Create(&image).Error; err != nil {
						return err
					}
					continue
				}
				if err := tx.Where("id = ? AND product_id = ?", op.delete, product.ID).
					Delete(&models.ProductImage{}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Produto salvo com sucesso!", "produto": product})
	}
}

// DeleteProduct removes a product and its gallery rows, unconditionally.
//
// POST /admin/produtos/:id/delete
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
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
