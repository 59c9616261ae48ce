// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, storing the order row together with its line items and
// converting between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The order number carries a unique index; the version column
// backs optimistic concurrency control.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"size:18;uniqueIndex"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"size:16;index"`
	Notes       string
	PickupAt    *time.Time
	DeliveredAt *time.Time
	TotalMinor  int64
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one priced line within an order. Weight and
// quantity are nullable; exactly one is set depending on the pricing model.
// Position preserves the display order of items within the order.
type LineItemDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;index"`
	ServiceID      *uuid.UUID `gorm:"type:uuid"`
	ServiceName    string
	UnitPriceMinor int64
	PricingModel   string `gorm:"size:16"`
	WeightTenths   *int64
	Quantity       *int
	SubtotalMinor  int64
	Position       int
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// fromDomain converts an order aggregate to its database representation,
// line items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, lineItemFromDomain(aggregate.ID(), item, i))
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number().String(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Status:      aggregate.Status().String(),
		Notes:       aggregate.Notes(),
		PickupAt:    aggregate.PickupAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		TotalMinor:  aggregate.Total().MinorUnits(),
		Version:     aggregate.Version(),
		Items:       itemDTOs,
	}
}

func lineItemFromDomain(orderID kernel.UUID, item order.LineItem, position int) LineItemDTO {
	var serviceID *uuid.UUID
	if id := item.ServiceID(); id != nil {
		raw := id.Bytes()
		serviceID = &raw
	}

	dto := LineItemDTO{
		ID:             item.ID().Bytes(),
		OrderID:        orderID.Bytes(),
		ServiceID:      serviceID,
		ServiceName:    item.ServiceName(),
		UnitPriceMinor: item.UnitPrice().MinorUnits(),
		PricingModel:   item.Pricing().Model().String(),
		SubtotalMinor:  item.Subtotal().MinorUnits(),
		Position:       position,
	}
	if weight, ok := item.Pricing().Weight(); ok {
		tenths := weight.Tenths()
		dto.WeightTenths = &tenths
	}
	if quantity, ok := item.Pricing().Quantity(); ok {
		dto.Quantity = &quantity
	}
	return dto
}

// toDomain converts a database DTO to an order aggregate using
// RestoreOrder, which recomputes the total from the restored items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	number, err := kernel.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, number, customerID, items, status,
		dto.Notes, dto.PickupAt, dto.DeliveredAt, dto.Version)
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	var serviceID *kernel.UUID
	if dto.ServiceID != nil {
		sid, sidErr := kernel.UUIDFromBytes((*dto.ServiceID)[:])
		if sidErr != nil {
			return order.LineItem{}, sidErr
		}
		serviceID = &sid
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceMinor)
	if err != nil {
		return order.LineItem{}, err
	}

	pricing, err := pricingToDomain(dto)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(id, serviceID, dto.ServiceName, unitPrice, pricing)
}

func pricingToDomain(dto LineItemDTO) (order.Pricing, error) {
	model, err := order.PricingModelFromString(dto.PricingModel)
	if err != nil {
		return order.Pricing{}, err
	}

	switch model {
	case order.PerWeight:
		var tenths int64
		if dto.WeightTenths != nil {
			tenths = *dto.WeightTenths
		}
		weight, weightErr := kernel.NewWeightFromTenths(tenths)
		if weightErr != nil {
			return order.Pricing{}, weightErr
		}
		return order.NewPerWeightPricing(weight)
	case order.PerUnit:
		var quantity int
		if dto.Quantity != nil {
			quantity = *dto.Quantity
		}
		return order.NewPerUnitPricing(quantity)
	case order.Flat:
		return order.NewFlatPricing(), nil
	case order.PricingModelUnknown:
		return order.Pricing{}, model.Validate()
	default:
		return order.Pricing{}, model.Validate()
	}
}
