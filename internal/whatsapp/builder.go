package whatsapp

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rotikita/rotikita-backend/internal/settings"
	"github.com/rotikita/rotikita-backend/pkg/db/models"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an integer rupiah amount with locale grouping,
// e.g. 150000 -> "Rp150.000".
func FormatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("Rp%d", amount)
}

// BuildHandoffURL produces the wa.me deep link prefilled with the order
// summary. Pure formatting: no I/O, same inputs always yield the same link.
// The destination number keeps only its digits so "+62 812-3456" and
// "628123456" resolve to the same chat.
func BuildHandoffURL(store *settings.StoreSettings, order *models.Order) string {
	digits := digitsOnly(store.WhatsAppNumber)
	text := BuildMessage(store, order)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}

// BuildMessage assembles the plain-text order summary before encoding.
// Newlines here become %0A in the final link.
func BuildMessage(store *settings.StoreSettings, order *models.Order) string {
	var b strings.Builder

	b.WriteString("Halo " + store.StoreName + "!\n")
	b.WriteString("Saya ingin konfirmasi pesanan berikut:\n\n")
	b.WriteString("No. Pesanan: " + order.OrderNumber + "\n")
	b.WriteString("Nama: " + order.CustomerName + "\n")
	b.WriteString("Telepon: " + order.CustomerPhone + "\n")
	b.WriteString("Alamat: " + order.ShippingAddress + ", " + order.ShippingCity + "\n\n")

	b.WriteString("Pesanan:\n")
	for _, item := range order.Items {
		b.WriteString(formatItemLine(item))
		b.WriteString("\n")
	}

	b.WriteString("\nTotal: " + FormatRupiah(order.TotalAmount) + "\n")

	if store.DeliveryNotes != "" {
		b.WriteString("\n" + store.DeliveryNotes + "\n")
	}
	if store.PickupNotes != "" {
		b.WriteString("\n" + store.PickupNotes + "\n")
	}

	b.WriteString("\nMohon konfirmasi ketersediaan dan cara pembayaran. Terima kasih!")
	return b.String()
}

func formatItemLine(item models.OrderItem) string {
	name := item.ProductName
	if item.VariantName != nil && *item.VariantName != "" {
		name += " (" + *item.VariantName + ")"
	}
	return "- " + name + " x" + strconv.Itoa(item.Quantity) +
		" = " + FormatRupiah(item.LineSubtotal)
}

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
