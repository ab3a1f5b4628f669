package orderrepo

import (
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the orders table. Statuses are stored as their display strings
// and the step ledger as a jsonb object keyed by step name.
type OrderDTO struct {
	ID             uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	Number         string                                `gorm:"column:order_number;size:12;uniqueIndex:idx_orders_order_number;not null"`
	QuoteID        uuid.UUID                             `gorm:"type:uuid;uniqueIndex:idx_orders_quote_id;not null"`
	Status         string                                `gorm:"size:32;index;not null"`
	PieceCount     int                                   `gorm:"not null"`
	UnitPrice      decimal.Decimal                       `gorm:"type:numeric(14,2);not null"`
	LeadTime       string                                `gorm:"not null"`
	DesignImageURL string                                `gorm:"column:design_image_url"`
	Steps          datatypes.JSONType[map[string]string] `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time                             `gorm:"index"`
	UpdatedAt      time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func stepsToJSON(steps order.Steps) datatypes.JSONType[map[string]string] {
	return datatypes.NewJSONType(steps.Strings())
}

func fromDomain(o *order.Order) OrderDTO {
	terms := o.Terms()
	return OrderDTO{
		ID:             o.ID().Bytes(),
		Number:         o.Number().String(),
		QuoteID:        o.QuoteID().Bytes(),
		Status:         o.Status().String(),
		PieceCount:     terms.PieceCount,
		UnitPrice:      terms.UnitPrice.Amount(),
		LeadTime:       terms.LeadTime,
		DesignImageURL: terms.DesignImageURL,
		Steps:          stepsToJSON(o.Steps()),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quoteID, err := kernel.UUIDFromBytes(dto.QuoteID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.ParseNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	steps, err := order.ParseSteps(dto.Steps.Data())
	if err != nil {
		return nil, err
	}

	terms := order.Terms{
		PieceCount:     dto.PieceCount,
		UnitPrice:      price,
		LeadTime:       dto.LeadTime,
		DesignImageURL: dto.DesignImageURL,
	}

	return order.RestoreOrder(id, number, quoteID, status, terms, steps, dto.CreatedAt, dto.UpdatedAt)
}
