package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotikita/rotikita-backend/pkg/db/models"
)

// Repository defines persistence operations for the order tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatusFields(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error)
}
