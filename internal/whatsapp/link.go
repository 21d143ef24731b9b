// Package whatsapp builds the pre-filled order deep link the storefront
// hands to the customer. It only constructs the URL; opening it is the
// customer's business.
package whatsapp

import (
	"fmt"
	"net/url"

	"fertistore/internal/catalog"
	"fertistore/internal/currency"
)

// OrderLink returns a wa.me link to phone with an order message for
// quantity bags of product, including the unit price and the total.
func OrderLink(phone string, product catalog.Product, quantity int) string {
	total := float64(quantity) * product.Price
	message := fmt.Sprintf(
		"Hi! I would like to order:\n\n🌱 *Product:* %s\n💰 *Price:* %s per bag\n📦 *Quantity:* %d bags\n💵 *Total:* %s\n\nPlease confirm availability and delivery details. Thank you!",
		product.Name,
		currency.Format(product.Price),
		quantity,
		currency.Format(total),
	)

	q := url.Values{}
	q.Set("text", message)
	return fmt.Sprintf("https://wa.me/%s?%s", phone, q.Encode())
}
