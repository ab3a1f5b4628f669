package queries

import (
	"context"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads the tracking view of an order.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown order and
// StoreUnavailableError when the database cannot be read.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			steps
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderStatusQueryResponse{}, errs.NewStoreUnavailableError("get order status", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderStatusQueryResponse{}, errs.NewStoreUnavailableError("get order status", err)
		}
		return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	var (
		id     uuid.UUID
		number string
		status string
		steps  datatypes.JSONType[map[string]string]
	)
	if err = rows.Scan(&id, &number, &status, &steps); err != nil {
		return GetOrderStatusQueryResponse{}, errs.NewStoreUnavailableError("get order status", err)
	}

	return orderStatusFromRow(id, number, status, steps.Data())
}

func orderStatusFromRow(
	rawID uuid.UUID,
	number string,
	rawStatus string,
	rawSteps map[string]string,
) (GetOrderStatusQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	steps, err := order.ParseSteps(rawSteps)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return GetOrderStatusQueryResponse{
		ID:          id,
		OrderNumber: number,
		Status:      status,
		Steps:       steps,
	}, nil
}
