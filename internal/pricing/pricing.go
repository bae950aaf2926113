package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/rotikita/rotikita-backend/pkg/enums"
)

// LineItem carries the two fields pricing needs from a cart or checkout line.
type LineItem struct {
	UnitPrice int64
	Quantity  int
}

// Quote is the full price breakdown for a set of lines and a destination.
// ShippingFee is nil when the region has no fixed fee and must be negotiated
// over chat; callers must render that distinctly from a numeric zero.
type Quote struct {
	Subtotal    int64
	ShippingFee *int64
	TaxAmount   int64
	Total       int64
}

// Subtotal sums unit price times quantity over all lines. Exact integer math.
func Subtotal(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// ShippingFee resolves the flat fee for a region from the configured table.
// RegionOther returns nil (negotiate off-platform). An unselected or unmapped
// region resolves to zero rather than erroring so a settings gap never blocks
// checkout.
func ShippingFee(region enums.ShippingRegion, fees map[enums.ShippingRegion]int64) *int64 {
	if region == enums.RegionOther {
		return nil
	}
	fee := fees[region]
	if fee < 0 {
		fee = 0
	}
	return &fee
}

// Tax computes subtotal * rate in whole rupiah, rounding half away from zero.
func Tax(subtotal int64, rate float64) int64 {
	if rate <= 0 || subtotal <= 0 {
		return 0
	}
	return decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromFloat(rate)).
		Round(0).
		IntPart()
}

// Compute builds the quote used both for storefront display and for the
// authoritative server-side totals at order creation. The server copy is the
// only one allowed to write these numbers to storage.
func Compute(items []LineItem, region enums.ShippingRegion, taxRate float64, fees map[enums.ShippingRegion]int64) Quote {
	subtotal := Subtotal(items)
	fee := ShippingFee(region, fees)
	tax := Tax(subtotal, taxRate)

	total := subtotal + tax
	if fee != nil {
		total += *fee
	}

	return Quote{
		Subtotal:    subtotal,
		ShippingFee: fee,
		TaxAmount:   tax,
		Total:       total,
	}
}
