package controllers

import (
	"net/http"

	"github.com/rotikita/rotikita-backend/api/responses"
	"github.com/rotikita/rotikita-backend/api/validators"
	"github.com/rotikita/rotikita-backend/internal/orders"
	"github.com/rotikita/rotikita-backend/internal/pricing"
	"github.com/rotikita/rotikita-backend/internal/settings"
	"github.com/rotikita/rotikita-backend/pkg/enums"
	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
	"github.com/rotikita/rotikita-backend/pkg/logger"
)

type checkoutItemRequest struct {
	ProductID   string  `json:"product_id" validate:"required"`
	VariantID   *string `json:"variant_id"`
	ProductName string  `json:"product_name" validate:"required"`
	VariantName *string `json:"variant_name"`
	UnitPrice   int64   `json:"unit_price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"min=1"`
}

type quoteRequest struct {
	ShippingRegion string                `json:"shipping_region"`
	Items          []checkoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

type quoteResponse struct {
	Subtotal    int64  `json:"subtotal"`
	ShippingFee *int64 `json:"shipping_fee"`
	TaxAmount   int64  `json:"tax_amount"`
	Total       int64  `json:"total"`
}

type checkoutRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerPhone string  `json:"customer_phone" validate:"required"`
	CustomerEmail *string `json:"customer_email" validate:"omitempty,email"`

	ShippingAddress string  `json:"shipping_address" validate:"required"`
	ShippingCity    string  `json:"shipping_city" validate:"required"`
	ShippingRegion  string  `json:"shipping_region"`
	PostalCode      *string `json:"postal_code"`
	Province        *string `json:"province"`
	Notes           *string `json:"notes"`

	PaymentMethod string                `json:"payment_method"`
	Items         []checkoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

type checkoutResponse struct {
	OrderNumber string `json:"order_number"`
	TotalAmount int64  `json:"total_amount"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// CheckoutQuote prices a cart for display. The numbers are an estimate; the
// authoritative totals are recomputed at order creation.
func CheckoutQuote(settingsSvc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		region, err := enums.ParseShippingRegion(payload.ShippingRegion)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shipping region"))
			return
		}

		store, err := settingsSvc.Get(r.Context())
		if err != nil && logg != nil {
			logg.Warn(r.Context(), "quoting with default store settings")
		}

		lines := make([]pricing.LineItem, 0, len(payload.Items))
		for _, item := range payload.Items {
			lines = append(lines, pricing.LineItem{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
		}
		quote := pricing.Compute(lines, region, store.TaxRate, store.ShippingFees)

		responses.WriteSuccess(w, quoteResponse{
			Subtotal:    quote.Subtotal,
			ShippingFee: quote.ShippingFee,
			TaxAmount:   quote.TaxAmount,
			Total:       quote.Total,
		})
	}
}

// Checkout converts the submitted cart into a persisted order and returns
// the WhatsApp handoff link.
func Checkout(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]orders.CheckoutItem, 0, len(payload.Items))
		for _, item := range payload.Items {
			items = append(items, orders.CheckoutItem{
				ProductID:   item.ProductID,
				VariantID:   item.VariantID,
				ProductName: item.ProductName,
				VariantName: item.VariantName,
				UnitPrice:   item.UnitPrice,
				Quantity:    item.Quantity,
			})
		}

		result, err := svc.Create(r.Context(), orders.CreateOrderInput{
			CustomerName:    payload.CustomerName,
			CustomerPhone:   payload.CustomerPhone,
			CustomerEmail:   payload.CustomerEmail,
			ShippingAddress: payload.ShippingAddress,
			ShippingCity:    payload.ShippingCity,
			ShippingRegion:  payload.ShippingRegion,
			PostalCode:      payload.PostalCode,
			Province:        payload.Province,
			Notes:           payload.Notes,
			PaymentMethod:   payload.PaymentMethod,
			Items:           items,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, checkoutResponse{
			OrderNumber: result.OrderNumber,
			TotalAmount: result.TotalAmount,
			WhatsAppURL: result.WhatsAppURL,
		})
	}
}
