package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotikita/rotikita-backend/internal/cart"
	"github.com/rotikita/rotikita-backend/internal/orders"
	"github.com/rotikita/rotikita-backend/internal/settings"
	"github.com/rotikita/rotikita-backend/pkg/config"
	"github.com/rotikita/rotikita-backend/pkg/db/models"
	"github.com/rotikita/rotikita-backend/pkg/enums"
	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
)

type memoryCartStore struct {
	carts map[string]*cart.Cart
}

func (m *memoryCartStore) Load(_ context.Context, token string) (*cart.Cart, error) {
	if c, ok := m.carts[token]; ok {
		return c, nil
	}
	return &cart.Cart{Token: token}, nil
}

func (m *memoryCartStore) Save(_ context.Context, c *cart.Cart) error {
	m.carts[c.Token] = c
	return nil
}

func (m *memoryCartStore) Delete(_ context.Context, token string) error {
	delete(m.carts, token)
	return nil
}

type stubSettings struct{}

func (stubSettings) Get(context.Context) (*settings.StoreSettings, error) {
	return &settings.StoreSettings{
		TaxRate:        0.11,
		ShippingFees:   map[enums.ShippingRegion]int64{enums.RegionJakartaPusat: 15000},
		WhatsAppNumber: "6281234567890",
		StoreName:      "RotiKita Bakery",
	}, nil
}

type stubOrders struct {
	created *orders.CreateOrderResult
	order   *models.Order
}

func (s *stubOrders) Create(context.Context, orders.CreateOrderInput) (*orders.CreateOrderResult, error) {
	if s.created == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "not wired")
	}
	return s.created, nil
}

func (s *stubOrders) GetByNumber(_ context.Context, number string) (*models.Order, error) {
	if s.order != nil && s.order.OrderNumber == number {
		return s.order, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *stubOrders) GetByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	if s.order != nil && s.order.ID == id {
		return s.order, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *stubOrders) UpdateStatus(_ context.Context, id uuid.UUID, input orders.UpdateStatusInput) (*orders.StatusUpdate, error) {
	if input.Status == nil && input.PaymentStatus == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status or payment_status required")
	}
	status := enums.OrderStatusConfirmed
	return &orders.StatusUpdate{ID: id, Status: &status}, nil
}

func (s *stubOrders) BulkDelete(_ context.Context, ids []uuid.UUID) (*orders.BulkDeleteResult, error) {
	return &orders.BulkDeleteResult{Deleted: ids}, nil
}

func newTestRouter(t *testing.T, ordersSvc orders.Service) http.Handler {
	t.Helper()
	cartSvc, err := cart.NewService(&memoryCartStore{carts: map[string]*cart.Cart{}})
	require.NoError(t, err)
	cfg := &config.Config{}
	cfg.App.Env = "test"
	return NewRouter(cfg, nil, nil, nil, stubSettings{}, cartSvc, ordersSvc, nil)
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(t, &stubOrders{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test", w.Header().Get("X-RotiKita-Env"))
}

func TestSettingsFetch(t *testing.T) {
	router := newTestRouter(t, &stubOrders{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data settings.StoreSettings `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	assert.Equal(t, 0.11, envelope.Data.TaxRate)
	assert.Equal(t, "RotiKita Bakery", envelope.Data.StoreName)
}

func TestCartAddAndFetch(t *testing.T) {
	router := newTestRouter(t, &stubOrders{})
	token := "storefront-cart-token-1"

	body := bytes.NewBufferString(`{"product_id":"p1","product_name":"Roti Sobek","unit_price":25000,"quantity":2}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/cart/"+token+"/items", body))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart/"+token+"/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			TotalItems int   `json:"total_items"`
			TotalPrice int64 `json:"total_price"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	assert.Equal(t, 2, envelope.Data.TotalItems)
	assert.Equal(t, int64(50000), envelope.Data.TotalPrice)
}

func TestCheckoutQuote(t *testing.T) {
	router := newTestRouter(t, &stubOrders{})
	body := bytes.NewBufferString(`{"shipping_region":"jakarta_pusat","items":[{"product_id":"p1","product_name":"Roti Sobek","unit_price":50000,"quantity":2}]}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/checkout/quote", body))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var envelope struct {
		Data struct {
			Subtotal    int64  `json:"subtotal"`
			ShippingFee *int64 `json:"shipping_fee"`
			TaxAmount   int64  `json:"tax_amount"`
			Total       int64  `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	assert.Equal(t, int64(100000), envelope.Data.Subtotal)
	require.NotNil(t, envelope.Data.ShippingFee)
	assert.Equal(t, int64(15000), *envelope.Data.ShippingFee)
	assert.Equal(t, int64(11000), envelope.Data.TaxAmount)
	assert.Equal(t, int64(126000), envelope.Data.Total)
}

func TestCheckoutCreated(t *testing.T) {
	stub := &stubOrders{created: &orders.CreateOrderResult{
		OrderID:     uuid.New(),
		OrderNumber: "ORD-20260209-ABCD",
		TotalAmount: 126000,
		WhatsAppURL: "https://wa.me/6281234567890?text=halo",
	}}
	router := newTestRouter(t, stub)

	body := bytes.NewBufferString(`{
		"customer_name":"Budi Santoso",
		"customer_phone":"081234567890",
		"shipping_address":"Jl. Merdeka No. 1",
		"shipping_city":"Jakarta",
		"shipping_region":"jakarta_pusat",
		"items":[{"product_id":"p1","product_name":"Roti Sobek","unit_price":50000,"quantity":2}]
	}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/checkout", body))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var envelope struct {
		Data struct {
			OrderNumber string `json:"order_number"`
			TotalAmount int64  `json:"total_amount"`
			WhatsAppURL string `json:"whatsapp_url"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	assert.Equal(t, "ORD-20260209-ABCD", envelope.Data.OrderNumber)
	assert.Equal(t, int64(126000), envelope.Data.TotalAmount)
	assert.NotEmpty(t, envelope.Data.WhatsAppURL)
}

func TestOrderTrackNotFound(t *testing.T) {
	router := newTestRouter(t, &stubOrders{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-20260209-ZZZZ", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderTrackFound(t *testing.T) {
	order := &models.Order{
		ID:            uuid.New(),
		OrderNumber:   "ORD-20260209-ABCD",
		CustomerName:  "Budi Santoso",
		CustomerPhone: "081234567890",
		Subtotal:      100000,
		TaxAmount:     11000,
		ShippingCost:  15000,
		TotalAmount:   126000,
		PaymentMethod: enums.PaymentMethodWhatsApp,
		PaymentStatus: enums.PaymentStatusPending,
		Status:        enums.OrderStatusPending,
	}
	router := newTestRouter(t, &stubOrders{order: order})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-20260209-ABCD", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			OrderNumber string `json:"order_number"`
			TotalAmount int64  `json:"total_amount"`
			Status      string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	assert.Equal(t, "ORD-20260209-ABCD", envelope.Data.OrderNumber)
	assert.Equal(t, "pending", envelope.Data.Status)
}

func TestAdminStatusPatchRequiresField(t *testing.T) {
	router := newTestRouter(t, &stubOrders{})
	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{}`)
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/"+uuid.NewString()+"/status", body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminBulkDelete(t *testing.T) {
	router := newTestRouter(t, &stubOrders{})
	id := uuid.NewString()
	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"ids":["` + id + `"]}`)
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/v1/orders/bulk-delete", body))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var envelope struct {
		Data struct {
			Deleted []string `json:"deleted"`
			Missing []string `json:"missing"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	assert.Equal(t, []string{id}, envelope.Data.Deleted)
	assert.Empty(t, envelope.Data.Missing)
}
