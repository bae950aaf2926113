package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rotikita/rotikita-backend/api/responses"
	"github.com/rotikita/rotikita-backend/api/validators"
	cartsvc "github.com/rotikita/rotikita-backend/internal/cart"
	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
	"github.com/rotikita/rotikita-backend/pkg/logger"
)

type cartAddItemRequest struct {
	ProductID   string  `json:"product_id" validate:"required"`
	VariantID   *string `json:"variant_id"`
	ProductName string  `json:"product_name" validate:"required"`
	VariantName *string `json:"variant_name"`
	UnitPrice   int64   `json:"unit_price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"min=1"`
}

type cartUpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

type cartResponse struct {
	Token      string         `json:"token"`
	Items      []cartsvc.Line `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPrice int64          `json:"total_price"`
}

func newCartResponse(c *cartsvc.Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []cartsvc.Line{}
	}
	return cartResponse{
		Token:      c.Token,
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

// CartFetch returns the guest cart for the token in the URL.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := validators.CartTokenParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.Get(withCartToken(r, logg, token), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

// CartAddItem appends a line or merges quantity into an existing one.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := validators.CartTokenParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartAddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.AddItem(withCartToken(r, logg, token), token, cartsvc.AddItemInput{
			ProductID:   payload.ProductID,
			VariantID:   payload.VariantID,
			ProductName: payload.ProductName,
			VariantName: payload.VariantName,
			UnitPrice:   payload.UnitPrice,
			Quantity:    payload.Quantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartResponse(cart))
	}
}

// CartUpdateQuantity sets the quantity of one line. Values below one are
// clamped, not rejected.
func CartUpdateQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := validators.CartTokenParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lineID := chi.URLParam(r, "lineId")
		if lineID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id required"))
			return
		}

		var payload cartUpdateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.UpdateQuantity(withCartToken(r, logg, token), token, lineID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

// CartRemoveItem deletes one line. Removing an absent line is a no-op.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := validators.CartTokenParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lineID := chi.URLParam(r, "lineId")
		if lineID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id required"))
			return
		}

		cart, err := svc.RemoveItem(withCartToken(r, logg, token), token, lineID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := validators.CartTokenParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(withCartToken(r, logg, token), token); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
