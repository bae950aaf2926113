package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rotikita/rotikita-backend/pkg/db/models"
	"github.com/rotikita/rotikita-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ordersTable := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  order_number TEXT NOT NULL,
  customer_name TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  customer_email TEXT,
  shipping_address TEXT NOT NULL,
  shipping_city TEXT NOT NULL,
  shipping_region TEXT NOT NULL DEFAULT '',
  postal_code TEXT,
  province TEXT,
  notes TEXT,
  subtotal INTEGER NOT NULL,
  tax_amount INTEGER NOT NULL,
  shipping_cost INTEGER NOT NULL DEFAULT 0,
  discount_amount INTEGER NOT NULL DEFAULT 0,
  total_amount INTEGER NOT NULL,
  payment_method TEXT NOT NULL DEFAULT 'whatsapp',
  payment_status TEXT NOT NULL DEFAULT 'pending',
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);
`
	orderItemsTable := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  variant_id TEXT,
  product_name TEXT NOT NULL,
  variant_name TEXT,
  unit_price INTEGER NOT NULL,
  quantity INTEGER NOT NULL,
  line_subtotal INTEGER NOT NULL,
  created_at DATETIME
);
`
	uniqueIndex := `CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_order_number ON orders (order_number);`

	for _, stmt := range []string{ordersTable, orderItemsTable, uniqueIndex} {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func seedOrder(t *testing.T, conn *gorm.DB, number string) *models.Order {
	t.Helper()
	order := &models.Order{
		ID:              uuid.New(),
		OrderNumber:     number,
		CustomerName:    "Budi Santoso",
		CustomerPhone:   "081234567890",
		ShippingAddress: "Jl. Merdeka No. 1",
		ShippingCity:    "Jakarta",
		ShippingRegion:  enums.RegionJakartaPusat,
		Subtotal:        100000,
		TaxAmount:       11000,
		ShippingCost:    15000,
		TotalAmount:     126000,
		PaymentMethod:   enums.PaymentMethodWhatsApp,
		PaymentStatus:   enums.PaymentStatusPending,
		Status:          enums.OrderStatusPending,
	}
	repo := NewRepository(conn)
	_, err := repo.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	return order
}

func TestCreateOrderRejectsDuplicateNumber(t *testing.T) {
	conn := setupOrdersTestDB(t)
	seedOrder(t, conn, "ORD-20260209-ABCD")

	dup := seedOrderModel("ORD-20260209-ABCD")
	_, err := NewRepository(conn).CreateOrder(context.Background(), dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")
}

func seedOrderModel(number string) *models.Order {
	return &models.Order{
		ID:              uuid.New(),
		OrderNumber:     number,
		CustomerName:    "Siti Rahma",
		CustomerPhone:   "081298765432",
		ShippingAddress: "Jl. Sudirman No. 2",
		ShippingCity:    "Jakarta",
		Subtotal:        50000,
		TaxAmount:       5500,
		TotalAmount:     55500,
		PaymentMethod:   enums.PaymentMethodWhatsApp,
		PaymentStatus:   enums.PaymentStatusPending,
		Status:          enums.OrderStatusPending,
	}
}

func TestFindByOrderNumberReturnsItemsInInsertionOrder(t *testing.T) {
	conn := setupOrdersTestDB(t)
	order := seedOrder(t, conn, "ORD-20260209-AAAA")
	repo := NewRepository(conn)
	ctx := context.Background()

	now := time.Now()
	items := buildItems(order.ID, []CheckoutItem{
		{ProductID: "p1", ProductName: "Roti Sobek", UnitPrice: 25000, Quantity: 2},
		{ProductID: "p2", ProductName: "Bolu Pandan", UnitPrice: 50000, Quantity: 1},
		{ProductID: "p3", ProductName: "Donat", UnitPrice: 8000, Quantity: 6},
	}, now)
	require.NoError(t, repo.CreateOrderItems(ctx, items))

	found, err := repo.FindByOrderNumber(ctx, "ORD-20260209-AAAA")
	require.NoError(t, err)
	require.Len(t, found.Items, 3)
	assert.Equal(t, "Roti Sobek", found.Items[0].ProductName)
	assert.Equal(t, "Bolu Pandan", found.Items[1].ProductName)
	assert.Equal(t, "Donat", found.Items[2].ProductName)
	assert.Equal(t, int64(50000), found.Items[0].LineSubtotal)
}

func TestFindByIDMissing(t *testing.T) {
	conn := setupOrdersTestDB(t)
	_, err := NewRepository(conn).FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateStatusFields(t *testing.T) {
	conn := setupOrdersTestDB(t)
	order := seedOrder(t, conn, "ORD-20260209-BBBB")
	repo := NewRepository(conn)
	ctx := context.Background()

	rows, err := repo.UpdateStatusFields(ctx, order.ID, map[string]any{"status": enums.OrderStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, found.Status)
	assert.Equal(t, enums.PaymentStatusPending, found.PaymentStatus)

	rows, err = repo.UpdateStatusFields(ctx, uuid.New(), map[string]any{"status": enums.OrderStatusConfirmed})
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestDeleteOrderRemovesItems(t *testing.T) {
	conn := setupOrdersTestDB(t)
	order := seedOrder(t, conn, "ORD-20260209-CCCC")
	repo := NewRepository(conn)
	ctx := context.Background()

	items := buildItems(order.ID, []CheckoutItem{
		{ProductID: "p1", ProductName: "Croissant", UnitPrice: 28000, Quantity: 1},
	}, time.Now())
	require.NoError(t, repo.CreateOrderItems(ctx, items))

	rows, err := repo.DeleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	var itemCount int64
	require.NoError(t, conn.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	rows, err = repo.DeleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
