package orders

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/rotikita/rotikita-backend/internal/pricing"
	"github.com/rotikita/rotikita-backend/internal/settings"
	"github.com/rotikita/rotikita-backend/internal/whatsapp"
	"github.com/rotikita/rotikita-backend/pkg/config"
	"github.com/rotikita/rotikita-backend/pkg/db"
	"github.com/rotikita/rotikita-backend/pkg/db/models"
	"github.com/rotikita/rotikita-backend/pkg/enums"
	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
	"github.com/rotikita/rotikita-backend/pkg/logger"
	"github.com/rotikita/rotikita-backend/pkg/metrics"
)

const orderNumberIndex = "idx_orders_order_number"

const numberRetryBackoff = 25 * time.Millisecond

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the order operations behind checkout, tracking and admin.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error)
	GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*StatusUpdate, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*BulkDeleteResult, error)
}

type service struct {
	repo     Repository
	tx       txRunner
	settings settings.Service
	checkout config.CheckoutConfig
	metrics  *metrics.CheckoutMetrics
	logger   *logger.Logger
	now      func() time.Time
}

// NewService builds the order service with the required dependencies.
// Metrics and logger may be nil.
func NewService(repo Repository, tx txRunner, settingsSvc settings.Service, checkout config.CheckoutConfig, m *metrics.CheckoutMetrics, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if settingsSvc == nil {
		return nil, fmt.Errorf("settings service required")
	}
	if checkout.OrderNumberRetries <= 0 {
		checkout.OrderNumberRetries = 5
	}
	return &service{
		repo:     repo,
		tx:       tx,
		settings: settingsSvc,
		checkout: checkout,
		metrics:  m,
		logger:   logg,
		now:      time.Now,
	}, nil
}

// Create converts a client-submitted cart into a persisted order. Totals are
// recomputed server-side; the header and all items land in one transaction so
// any failure leaves zero rows behind.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error) {
	start := time.Now()
	result, reason, err := s.create(ctx, input)
	if err != nil {
		s.metrics.ObserveDuration("failure", time.Since(start))
		s.metrics.IncFailed(reason)
		return nil, err
	}
	s.metrics.ObserveDuration("success", time.Since(start))
	s.metrics.IncCreated()
	return result, nil
}

func (s *service) create(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, string, error) {
	details := validateCreate(input)

	region, regionErr := enums.ParseShippingRegion(input.ShippingRegion)
	if regionErr != nil {
		details["shipping_region"] = regionErr.Error()
	}

	method := enums.PaymentMethodWhatsApp
	if input.PaymentMethod != "" {
		parsed, err := enums.ParsePaymentMethod(input.PaymentMethod)
		if err != nil {
			details["payment_method"] = err.Error()
		} else {
			method = parsed
		}
	}

	if len(details) > 0 {
		return nil, "validation", pkgerrors.New(pkgerrors.CodeValidation, "invalid checkout submission").WithDetails(details)
	}

	store, err := s.settings.Get(ctx)
	if err != nil {
		// Get falls back to configured defaults; checkout proceeds.
		if s.logger != nil {
			s.logger.Warn(ctx, "store settings unavailable, using defaults")
		}
	}

	lines := make([]pricing.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		lines = append(lines, pricing.LineItem{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}
	quote := pricing.Compute(lines, region, store.TaxRate, store.ShippingFees)

	var shippingCost int64
	if quote.ShippingFee != nil {
		shippingCost = *quote.ShippingFee
	}

	var created *models.Order
	backoff := retry.WithMaxRetries(uint64(s.checkout.OrderNumberRetries), retry.NewConstant(numberRetryBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		number, err := NewOrderNumber(s.now())
		if err != nil {
			return err
		}
		order := s.buildOrder(number, input, region, method, quote, shippingCost)
		items := buildItems(order.ID, input.Items, s.now())

		txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			repo := s.repo.WithTx(tx)
			if _, err := repo.CreateOrder(ctx, order); err != nil {
				return err
			}
			return repo.CreateOrderItems(ctx, items)
		})
		if txErr != nil {
			if db.IsUniqueViolation(txErr, orderNumberIndex) {
				return retry.RetryableError(txErr)
			}
			return txErr
		}

		order.Items = items
		created = order
		return nil
	})
	if err != nil {
		return nil, "persistence", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist order")
	}

	if s.logger != nil {
		s.logger.Info(s.logger.WithOrderNumber(ctx, created.OrderNumber), "order created")
	}

	return &CreateOrderResult{
		OrderID:     created.ID,
		OrderNumber: created.OrderNumber,
		TotalAmount: created.TotalAmount,
		WhatsAppURL: whatsapp.BuildHandoffURL(store, created),
	}, "", nil
}

func (s *service) buildOrder(number string, input CreateOrderInput, region enums.ShippingRegion, method enums.PaymentMethod, quote pricing.Quote, shippingCost int64) *models.Order {
	return &models.Order{
		ID:          uuid.New(),
		OrderNumber: number,

		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,

		ShippingAddress: input.ShippingAddress,
		ShippingCity:    input.ShippingCity,
		ShippingRegion:  region,
		PostalCode:      input.PostalCode,
		Province:        input.Province,
		Notes:           input.Notes,

		Subtotal:       quote.Subtotal,
		TaxAmount:      quote.TaxAmount,
		ShippingCost:   shippingCost,
		DiscountAmount: 0,
		TotalAmount:    quote.Subtotal + quote.TaxAmount + shippingCost,

		PaymentMethod: method,
		PaymentStatus: enums.PaymentStatusPending,
		Status:        enums.OrderStatusPending,
	}
}

// buildItems snapshots the submitted lines. CreatedAt is staggered by a
// microsecond per line so retrieval ordered by created_at preserves
// submission order even when the clock resolution collapses.
func buildItems(orderID uuid.UUID, items []CheckoutItem, now time.Time) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for i, item := range items {
		out = append(out, models.OrderItem{
			ID:           uuid.New(),
			OrderID:      orderID,
			ProductID:    item.ProductID,
			VariantID:    item.VariantID,
			ProductName:  item.ProductName,
			VariantName:  item.VariantName,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			LineSubtotal: item.UnitPrice * int64(item.Quantity),
			CreatedAt:    now.Add(time.Duration(i) * time.Microsecond),
		})
	}
	return out
}

func validateCreate(input CreateOrderInput) map[string]string {
	details := map[string]string{}
	if input.CustomerName == "" {
		details["customer_name"] = "required"
	}
	if input.CustomerPhone == "" {
		details["customer_phone"] = "required"
	}
	if input.ShippingAddress == "" {
		details["shipping_address"] = "required"
	}
	if input.ShippingCity == "" {
		details["shipping_city"] = "required"
	}
	if len(input.Items) == 0 {
		details["items"] = "at least one item required"
	}
	for i, item := range input.Items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		if item.ProductID == "" {
			details[prefix+"product_id"] = "required"
		}
		if item.ProductName == "" {
			details[prefix+"product_name"] = "required"
		}
		if item.UnitPrice < 0 {
			details[prefix+"unit_price"] = "must not be negative"
		}
		if item.Quantity < 1 {
			details[prefix+"quantity"] = "must be at least 1"
		}
	}
	return details
}

// GetByNumber resolves an order by its public tracking number.
func (s *service) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	if orderNumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order number required")
	}
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find order by number")
	}
	return order, nil
}

// GetByID resolves an order by its internal id for the admin detail view.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find order by id")
	}
	return order, nil
}

// UpdateStatus patches status and/or payment status in one write. Any status
// may move to any other status; ordering discipline is the operator's job.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*StatusUpdate, error) {
	if input.Status == nil && input.PaymentStatus == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status or payment_status required")
	}

	details := map[string]string{}
	updates := map[string]any{}
	result := &StatusUpdate{ID: id}

	if input.Status != nil {
		status, err := enums.ParseOrderStatus(*input.Status)
		if err != nil {
			details["status"] = err.Error()
		} else {
			updates["status"] = status
			result.Status = &status
		}
	}
	if input.PaymentStatus != nil {
		paymentStatus, err := enums.ParsePaymentStatus(*input.PaymentStatus)
		if err != nil {
			details["payment_status"] = err.Error()
		} else {
			updates["payment_status"] = paymentStatus
			result.PaymentStatus = &paymentStatus
		}
	}
	if len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status update").WithDetails(details)
	}

	rows, err := s.repo.UpdateStatusFields(ctx, id, updates)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order status")
	}
	if rows == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return result, nil
}

// BulkDelete removes each order (header and items) in its own transaction so
// one failure never blocks the rest. Missing ids are reported, not errors.
func (s *service) BulkDelete(ctx context.Context, ids []uuid.UUID) (*BulkDeleteResult, error) {
	if len(ids) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one order id required")
	}

	result := &BulkDeleteResult{}
	var errs error
	for _, id := range ids {
		var rows int64
		err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			var txErr error
			rows, txErr = s.repo.WithTx(tx).DeleteOrder(ctx, id)
			return txErr
		})
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("delete order %s: %w", id, err))
			continue
		}
		if rows == 0 {
			result.Missing = append(result.Missing, id)
			continue
		}
		result.Deleted = append(result.Deleted, id)
	}
	if errs != nil {
		return result, pkgerrors.Wrap(pkgerrors.CodeInternal, errs, "bulk delete orders")
	}
	return result, nil
}
