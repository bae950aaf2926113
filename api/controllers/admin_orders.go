package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rotikita/rotikita-backend/api/responses"
	"github.com/rotikita/rotikita-backend/api/validators"
	"github.com/rotikita/rotikita-backend/internal/orders"
	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
	"github.com/rotikita/rotikita-backend/pkg/logger"
)

type adminOrderDetailResponse struct {
	ID string `json:"id"`
	orderResponse
}

type updateStatusRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

type updateStatusResponse struct {
	ID            string  `json:"id"`
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid4"`
}

type bulkDeleteResponse struct {
	Deleted []string `json:"deleted"`
	Missing []string `json:"missing"`
}

// AdminOrderDetail resolves an order by internal id.
func AdminOrderDetail(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, adminOrderDetailResponse{
			ID:            order.ID.String(),
			orderResponse: newOrderResponse(order),
		})
	}
}

// AdminOrderStatusPatch updates status and/or payment status.
func AdminOrderStatusPatch(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), id, orders.UpdateStatusInput{
			Status:        payload.Status,
			PaymentStatus: payload.PaymentStatus,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := updateStatusResponse{ID: updated.ID.String()}
		if updated.Status != nil {
			value := updated.Status.String()
			resp.Status = &value
		}
		if updated.PaymentStatus != nil {
			value := updated.PaymentStatus.String()
			resp.PaymentStatus = &value
		}
		responses.WriteSuccess(w, resp)
	}
}

// AdminOrdersBulkDelete removes the listed orders and reports missing ids.
func AdminOrdersBulkDelete(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bulkDeleteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ids := make([]uuid.UUID, 0, len(payload.IDs))
		for _, raw := range payload.IDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "invalid order id").WithDetails(map[string]any{"id": raw}))
				return
			}
			ids = append(ids, id)
		}

		result, err := svc.BulkDelete(r.Context(), ids)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := bulkDeleteResponse{Deleted: []string{}, Missing: []string{}}
		for _, id := range result.Deleted {
			resp.Deleted = append(resp.Deleted, id.String())
		}
		for _, id := range result.Missing {
			resp.Missing = append(resp.Missing, id.String())
		}
		responses.WriteSuccess(w, resp)
	}
}
