package checkoutcontroller

import (
	"net/http"
	"os"

	"github.com/CGDEV2002/Brecho-CataRoupas/middleware"
	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// defaultWhatsAppNumber is the store owner's number; override with the
// WHATSAPP_NUMBER env var.
const defaultWhatsAppNumber = "5551996235293"

func whatsAppNumber() string {
	if number := os.Getenv("WHATSAPP_NUMBER"); number != "" {
		return number
	}
	return defaultWhatsAppNumber
}

func cartItems(db *gorm.DB, sessionKey string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Preload("Product").Where("session_key = ?", sessionKey).Order("id").Find(&items).Error
	return items, err
}

// Review shows the order about to be placed: items, total and the contact
// form the frontend renders. An empty cart never reaches checkout.
//
// GET /carrinho/finalizar
func Review(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cartItems(db, middleware.SessionKey(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Seu carrinho está vazio!"})
			return
		}

		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Subtotal())
		}

		c.JSON(http.StatusOK, gin.H{"itens": items, "total": total})
	}
}

// Submit finalizes the order: formats the WhatsApp message from the cart and
// the submitted contact fields, empties the cart in one statement, and
// redirects the client to the chat link. Contact fields are passed through
// as-is; absent fields become empty strings.
//
// POST /carrinho/finalizar  (form: nome, telefone, endereco)
func Submit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionKey := middleware.SessionKey(c)

		items, err := cartItems(db, sessionKey)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Seu carrinho está vazio!"})
			return
		}

		summary := BuildOrderSummary(
			c.PostForm("nome"),
			c.PostForm("telefone"),
			c.PostForm("endereco"),
			items,
		)
		link := WhatsAppLink(whatsAppNumber(), summary.Message())

		if err := db.Where("session_key = ?", sessionKey).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.Redirect(http.StatusFound, link)
	}
}
