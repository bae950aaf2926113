package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rotikita/rotikita-backend/pkg/enums"
)

// Order is the persisted order header. The order layer is the sole writer of
// the derived money fields: TotalAmount always equals
// Subtotal + TaxAmount + ShippingCost - DiscountAmount.
type Order struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber string    `gorm:"column:order_number;uniqueIndex:idx_orders_order_number;not null"`

	CustomerName  string  `gorm:"column:customer_name;not null"`
	CustomerPhone string  `gorm:"column:customer_phone;not null"`
	CustomerEmail *string `gorm:"column:customer_email"`

	ShippingAddress string               `gorm:"column:shipping_address;not null"`
	ShippingCity    string               `gorm:"column:shipping_city;not null"`
	ShippingRegion  enums.ShippingRegion `gorm:"column:shipping_region;not null;default:''"`
	PostalCode      *string              `gorm:"column:postal_code"`
	Province        *string              `gorm:"column:province"`
	Notes           *string              `gorm:"column:notes"`

	Subtotal       int64 `gorm:"column:subtotal;not null"`
	TaxAmount      int64 `gorm:"column:tax_amount;not null"`
	ShippingCost   int64 `gorm:"column:shipping_cost;not null;default:0"`
	DiscountAmount int64 `gorm:"column:discount_amount;not null;default:0"`
	TotalAmount    int64 `gorm:"column:total_amount;not null"`

	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;not null;default:'whatsapp'"`
	PaymentStatus enums.PaymentStatus `gorm:"column:payment_status;not null;default:'pending'"`
	Status        enums.OrderStatus   `gorm:"column:status;not null;default:'pending'"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
