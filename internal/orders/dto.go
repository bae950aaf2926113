package orders

import (
	"github.com/google/uuid"

	"github.com/rotikita/rotikita-backend/pkg/enums"
)

// CheckoutItem is one client-submitted cart line at checkout. Prices are
// re-summed server-side; the client copy is display-only.
type CheckoutItem struct {
	ProductID   string
	VariantID   *string
	ProductName string
	VariantName *string
	UnitPrice   int64
	Quantity    int
}

// CreateOrderInput carries everything the checkout form submits.
type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	ShippingAddress string
	ShippingCity    string
	ShippingRegion  string
	PostalCode      *string
	Province        *string
	Notes           *string

	PaymentMethod string
	Items         []CheckoutItem
}

// CreateOrderResult is returned to the storefront after a successful
// checkout. WhatsAppURL is the prefilled payment-confirmation deep link.
type CreateOrderResult struct {
	OrderID     uuid.UUID
	OrderNumber string
	TotalAmount int64
	WhatsAppURL string
}

// UpdateStatusInput patches order state. At least one field must be set.
type UpdateStatusInput struct {
	Status        *string
	PaymentStatus *string
}

// StatusUpdate echoes the fields that were actually persisted.
type StatusUpdate struct {
	ID            uuid.UUID
	Status        *enums.OrderStatus
	PaymentStatus *enums.PaymentStatus
}

// BulkDeleteResult reports the per-id outcome of a bulk delete.
type BulkDeleteResult struct {
	Deleted []uuid.UUID
	Missing []uuid.UUID
}
