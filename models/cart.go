package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of an anonymous session's cart. The composite unique
// index on (session_key, product_id) is what makes the add-to-cart upsert
// race-safe: at most one row can ever exist per session and product.
type CartItem struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionKey string    `gorm:"size:64;not null;uniqueIndex:idx_cart_session_product" json:"-"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"produto_id"`
	Product    Product   `json:"produto"`
	Quantity   int       `gorm:"not null;default:1" json:"quantidade"`
	AddedAt    time.Time `gorm:"autoCreateTime" json:"adicionado_em"`
}

// Subtotal is quantity × unit price.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
