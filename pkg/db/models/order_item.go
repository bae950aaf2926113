package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is the immutable snapshot of one line within an order. Product
// and variant names are denormalized at creation time so later catalog edits
// never rewrite order history. LineSubtotal = UnitPrice * Quantity, and the
// sum of LineSubtotal over an order equals that order's Subtotal.
type OrderItem struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID     uuid.UUID `gorm:"column:order_id;type:uuid;not null"`
	ProductID   string    `gorm:"column:product_id;not null"`
	VariantID   *string   `gorm:"column:variant_id"`
	ProductName string    `gorm:"column:product_name;not null"`
	VariantName *string   `gorm:"column:variant_name"`

	UnitPrice    int64 `gorm:"column:unit_price;not null"`
	Quantity     int   `gorm:"column:quantity;not null"`
	LineSubtotal int64 `gorm:"column:line_subtotal;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
