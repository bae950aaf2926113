package controllers

import (
	"net/http"
	"time"

	"github.com/rotikita/rotikita-backend/api/responses"
	"github.com/rotikita/rotikita-backend/api/validators"
	"github.com/rotikita/rotikita-backend/internal/orders"
	"github.com/rotikita/rotikita-backend/pkg/db/models"
	"github.com/rotikita/rotikita-backend/pkg/logger"
)

type orderItemResponse struct {
	ProductID    string  `json:"product_id"`
	VariantID    *string `json:"variant_id,omitempty"`
	ProductName  string  `json:"product_name"`
	VariantName  *string `json:"variant_name,omitempty"`
	UnitPrice    int64   `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	LineSubtotal int64   `json:"line_subtotal"`
}

type orderResponse struct {
	OrderNumber string `json:"order_number"`

	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email,omitempty"`

	ShippingAddress string  `json:"shipping_address"`
	ShippingCity    string  `json:"shipping_city"`
	ShippingRegion  string  `json:"shipping_region"`
	PostalCode      *string `json:"postal_code,omitempty"`
	Province        *string `json:"province,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	Subtotal       int64 `json:"subtotal"`
	TaxAmount      int64 `json:"tax_amount"`
	ShippingCost   int64 `json:"shipping_cost"`
	DiscountAmount int64 `json:"discount_amount"`
	TotalAmount    int64 `json:"total_amount"`

	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
	Status        string `json:"status"`

	Items     []orderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
}

func newOrderResponse(order *models.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID:    item.ProductID,
			VariantID:    item.VariantID,
			ProductName:  item.ProductName,
			VariantName:  item.VariantName,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			LineSubtotal: item.LineSubtotal,
		})
	}
	return orderResponse{
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerEmail:   order.CustomerEmail,
		ShippingAddress: order.ShippingAddress,
		ShippingCity:    order.ShippingCity,
		ShippingRegion:  order.ShippingRegion.String(),
		PostalCode:      order.PostalCode,
		Province:        order.Province,
		Notes:           order.Notes,
		Subtotal:        order.Subtotal,
		TaxAmount:       order.TaxAmount,
		ShippingCost:    order.ShippingCost,
		DiscountAmount:  order.DiscountAmount,
		TotalAmount:     order.TotalAmount,
		PaymentMethod:   order.PaymentMethod.String(),
		PaymentStatus:   order.PaymentStatus.String(),
		Status:          order.Status.String(),
		Items:           items,
		CreatedAt:       order.CreatedAt,
	}
}

// OrderTrack resolves an order by its public number for customer tracking.
func OrderTrack(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := validators.OrderNumberParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithOrderNumber(ctx, number)
		}

		order, err := svc.GetByNumber(ctx, number)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, newOrderResponse(order))
	}
}
