package paymentrepo

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment record. Placeholder payments fail with
// payment.ErrPlaceholderIsNotPersistent.
func (r *GormPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.IsPlaceholder() {
		return payment.ErrPlaceholderIsNotPersistent
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Update saves a status change to an existing payment record.
func (r *GormPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.IsPlaceholder() {
		return payment.ErrPlaceholderIsNotPersistent
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "TransactionID", "ReferenceNumber").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// GetByOrder retrieves all payment records for an order, oldest first.
func (r *GormPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetStalePending retrieves pending payments created before the cutoff.
func (r *GormPaymentRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ? AND created_at < ?", payment.Pending.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// DeleteByOrder removes all payment records for an order, returning the
// number of records removed.
func (r *GormPaymentRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&PaymentDTO{}, "order_id = ?", orderID.Bytes())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func toDomainSlice(dtos []PaymentDTO) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}
