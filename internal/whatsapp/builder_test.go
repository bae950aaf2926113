package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotikita/rotikita-backend/internal/settings"
	"github.com/rotikita/rotikita-backend/pkg/db/models"
)

func testOrder() *models.Order {
	variant := "Coklat"
	return &models.Order{
		OrderNumber:     "ORD-20260209-ABCD",
		CustomerName:    "Budi Santoso",
		CustomerPhone:   "081234567890",
		ShippingAddress: "Jl. Merdeka No. 1",
		ShippingCity:    "Jakarta",
		TotalAmount:     150000,
		Items: []models.OrderItem{
			{ProductName: "Roti Sobek", VariantName: &variant, Quantity: 2, LineSubtotal: 50000},
			{ProductName: "Bolu Pandan", Quantity: 1, LineSubtotal: 100000},
		},
	}
}

func testSettings() *settings.StoreSettings {
	return &settings.StoreSettings{
		StoreName:      "RotiKita Bakery",
		WhatsAppNumber: "+62 812-3456-7890",
		DeliveryNotes:  "Pengiriman setiap hari pukul 09.00-17.00",
	}
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp150.000", FormatRupiah(150000))
	assert.Equal(t, "Rp1.250.500", FormatRupiah(1250500))
	assert.Equal(t, "Rp0", FormatRupiah(0))
	assert.Equal(t, "Rp500", FormatRupiah(500))
}

func TestBuildHandoffURLShape(t *testing.T) {
	link := BuildHandoffURL(testSettings(), testOrder())

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", parsed.Scheme)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/6281234567890", parsed.Path)

	assert.NotContains(t, link, "\n", "raw newlines must not survive encoding")
	assert.Contains(t, link, "%0A")
}

func TestBuildHandoffURLDecodedContent(t *testing.T) {
	order := testOrder()
	store := testSettings()
	link := BuildHandoffURL(store, order)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")

	assert.Contains(t, text, "ORD-20260209-ABCD")
	assert.Contains(t, text, "Budi Santoso")
	assert.Contains(t, text, "081234567890")
	assert.Contains(t, text, "Jl. Merdeka No. 1, Jakarta")
	assert.Contains(t, text, "- Roti Sobek (Coklat) x2 = Rp50.000")
	assert.Contains(t, text, "- Bolu Pandan x1 = Rp100.000")
	assert.Contains(t, text, "Total: Rp150.000")
	assert.Contains(t, text, store.StoreName)
	assert.Contains(t, text, store.DeliveryNotes)
	assert.Contains(t, text, "Terima kasih")
}

func TestBuildMessageOmitsEmptyNotes(t *testing.T) {
	store := testSettings()
	store.DeliveryNotes = ""
	store.PickupNotes = ""

	msg := BuildMessage(store, testOrder())
	assert.False(t, strings.Contains(msg, "\n\n\n"), "empty notes must not leave blank blocks")
}

func TestBuildIsDeterministic(t *testing.T) {
	store := testSettings()
	order := testOrder()
	assert.Equal(t, BuildHandoffURL(store, order), BuildHandoffURL(store, order))
}
