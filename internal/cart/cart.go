package cart

import (
	"time"
)

// Line is one product(+variant) entry in a guest cart. UnitPrice is the
// price snapshot taken when the line was added; the server reprices at
// checkout and never trusts these numbers.
type Line struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	VariantID   *string `json:"variant_id,omitempty"`
	ProductName string  `json:"product_name"`
	VariantName *string `json:"variant_name,omitempty"`
	UnitPrice   int64   `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// Cart is the staging area for one storefront session, keyed by a
// client-generated token. Last write wins; there is no cross-device merge.
type Cart struct {
	Token     string    `json:"token"`
	Items     []Line    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalItems sums the quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Items {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity across all lines.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, line := range c.Items {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return total
}

// findLine returns the index of the line with the same product/variant
// identity, or -1. Identity is (ProductID, VariantID).
func (c *Cart) findLine(productID string, variantID *string) int {
	for i, line := range c.Items {
		if line.ProductID != productID {
			continue
		}
		if equalVariant(line.VariantID, variantID) {
			return i
		}
	}
	return -1
}

func equalVariant(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
