package cartcontroller

import (
	"net/http"
	"strconv"

	"github.com/CGDEV2002/Brecho-CataRoupas/middleware"
	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func itemCount(db *gorm.DB, sessionKey string) (int64, error) {
	var count int64
	err := db.Model(&models.CartItem{}).Where("session_key = ?", sessionKey).Count(&count).Error
	return count, err
}

// AddItem puts one unit of a product into the session's cart. The write is a
// single upsert against the (session_key, product_id) unique index, so two
// near-simultaneous adds for the same product end up as one row with
// quantity 2, never two rows.
//
// POST /carrinho/adicionar/:produto_id
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionKey := middleware.SessionKey(c)

		productID, err := strconv.ParseUint(c.Param("produto_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid produto_id"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ? AND available = ?", uint(productID), true).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		item := models.CartItem{
			SessionKey: sessionKey,
			ProductID:  product.ID,
			Quantity:   1,
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_key"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + 1")}),
		}).Create(&item).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		count, err := itemCount(db, sessionKey)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cart items"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"message":        product.Name + " adicionado ao carrinho!",
			"carrinho_count": count,
		})
	}
}

// ViewCart lists the session's items and their decimal total.
//
// GET /carrinho
func ViewCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionKey := middleware.SessionKey(c)

		var items []models.CartItem
		if err := db.Preload("Product").Preload("Product.Category").
			Where("session_key = ?", sessionKey).Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Subtotal())
		}

		c.JSON(http.StatusOK, gin.H{
			"itens": items,
			"total": total,
		})
	}
}

// UpdateQuantity sets an item's quantity. Zero or less deletes the row; that
// is the defined policy, not an error.
//
// POST /carrinho/atualizar/:item_id  (form: quantidade)
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionKey := middleware.SessionKey(c)

		item, ok := sessionItem(c, db, sessionKey)
		if !ok {
			return
		}

		quantity, err := strconv.Atoi(c.DefaultPostForm("quantidade", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantidade"})
			return
		}

		if quantity > 0 {
			item.Quantity = quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
			c.JSON(http.StatusOK, item)
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removido do carrinho!"})
	}
}

// RemoveItem deletes one of the session's items.
//
// POST /carrinho/remover/:item_id
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionKey := middleware.SessionKey(c)

		item, ok := sessionItem(c, db, sessionKey)
		if !ok {
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removido do carrinho!"})
	}
}

// Count reports the number of distinct products in the cart, not the sum of
// their quantities.
//
// GET /carrinho/count
func Count(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := itemCount(db, middleware.SessionKey(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cart items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// sessionItem loads the :item_id row and checks it belongs to this session.
// A foreign item is indistinguishable from a missing one.
func sessionItem(c *gin.Context, db *gorm.DB, sessionKey string) (models.CartItem, bool) {
	var item models.CartItem

	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id"})
		return item, false
	}

	err = db.First(&item, "id = ? AND session_key = ?", uint(itemID), sessionKey).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
		}
		return item, false
	}

	return item, true
}
