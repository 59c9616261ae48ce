// Package servicerepo provides read access to the service catalog. The
// catalog is maintained elsewhere; the order core reads it to price line
// items and snapshot display names.
package servicerepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceDTO represents the database structure for catalog services.
type ServiceDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	UnitPriceMinor int64
	PricingModel   string `gorm:"size:16"`
}

// TableName specifies the database table name for catalog services.
func (ServiceDTO) TableName() string {
	return "services"
}

// GormServiceRepository implements ports.ServiceRepository using GORM.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GORM service catalog repository.
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// Get retrieves a catalog service by id.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (*service.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceId", id.String())
		}
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPriceMinor)
	if err != nil {
		return nil, err
	}
	pricingModel, err := order.PricingModelFromString(dto.PricingModel)
	if err != nil {
		return nil, err
	}

	return service.NewService(serviceID, dto.Name, unitPrice, pricingModel)
}
