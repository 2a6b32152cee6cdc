package checkoutcontroller

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/shopspring/decimal"
)

// OrderLine is one product block of the outgoing order message.
type OrderLine struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// OrderSummary is the finalized order as handed to the store owner.
type OrderSummary struct {
	Name    string
	Phone   string
	Address string
	Lines   []OrderLine
	Total   decimal.Decimal
}

// BuildOrderSummary recomputes every subtotal and the grand total from the
// cart rows. The total is derived here, independently of the cart view.
func BuildOrderSummary(name, phone, address string, items []models.CartItem) OrderSummary {
	summary := OrderSummary{
		Name:    name,
		Phone:   phone,
		Address: address,
		Total:   decimal.Zero,
	}

	for _, item := range items {
		subtotal := item.Subtotal()
		summary.Lines = append(summary.Lines, OrderLine{
			Product:   item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			Subtotal:  subtotal,
		})
		summary.Total = summary.Total.Add(subtotal)
	}

	return summary
}

const separator = "━━━━━━━━━━━━━━━━━━━━━━━━━\n"

// Message renders the fixed WhatsApp order template.
func (s OrderSummary) Message() string {
	var b strings.Builder

	b.WriteString("👋 *Olá! Temos um novo pedido do Brechó Online!*\n\n")
	b.WriteString("🛍️ *DETALHES DO PEDIDO*\n")
	b.WriteString(separator)
	b.WriteString("\n")
	b.WriteString("👤 *Cliente:* " + s.Name + "\n")
	b.WriteString("📱 *Telefone:* " + s.Phone + "\n")
	b.WriteString("📍 *Endereço de Entrega:*\n" + s.Address + "\n\n")
	b.WriteString("📦 *PRODUTOS SELECIONADOS:*\n")
	b.WriteString(separator)

	for _, line := range s.Lines {
		b.WriteString("▪️ *" + line.Product + "*\n")
		b.WriteString("   Quantidade: " + strconv.Itoa(line.Quantity) + "x\n")
		b.WriteString("   Valor unitário: R$ " + line.UnitPrice.StringFixed(2) + "\n")
		b.WriteString("   Subtotal: R$ " + line.Subtotal.StringFixed(2) + "\n\n")
	}

	b.WriteString(separator)
	b.WriteString("💰 *VALOR TOTAL: R$ " + s.Total.StringFixed(2) + "*\n\n")
	b.WriteString("📞 *Entre em contato para confirmar o pedido e combinar a entrega!*\n")
	b.WriteString("Obrigado pela preferência! ✨")

	return b.String()
}

// WhatsAppLink builds the wa.me deep link carrying the escaped message.
// Nothing is awaited from the other side; the client is just redirected.
func WhatsAppLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
