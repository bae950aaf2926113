package settings

import (
	"context"

	"gorm.io/gorm"

	"github.com/rotikita/rotikita-backend/pkg/db/models"
)

// Repository reads the key/value settings table.
type Repository interface {
	List(ctx context.Context) ([]models.Setting, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a settings repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]models.Setting, error) {
	var rows []models.Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
