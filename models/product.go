package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Condition string

const (
	ConditionNew         Condition = "novo"
	ConditionUsedLikeNew Condition = "usado_como_novo"
	ConditionUsedGood    Condition = "usado_bom"
	ConditionUsedFair    Condition = "usado_razoavel"
)

// ValidCondition reports whether s is one of the accepted condition values.
func ValidCondition(s string) bool {
	switch Condition(s) {
	case ConditionNew, ConditionUsedLikeNew, ConditionUsedGood, ConditionUsedFair:
		return true
	}
	return false
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"nome"`
	Slug        string          `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description string          `gorm:"type:text" json:"descricao"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"preco"`
	CategoryID  uint            `gorm:"not null;index" json:"categoria"`
	Category    Category        `json:"-"`
	Size        string          `gorm:"size:50" json:"tamanho"`
	Condition   Condition       `gorm:"size:20;default:novo" json:"condicao"`
	Available   bool            `json:"disponivel"`
	Image       string          `json:"imagem"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID" json:"imagens,omitempty"`
	CreatedAt   time.Time       `json:"criado_em"`
}

// ProductImage is an extra gallery image owned by a product. Rows are
// created and deleted only through the admin product form.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"produto"`
	Image     string `gorm:"not null" json:"imagem"`
}
