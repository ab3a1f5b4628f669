package queries

import (
	"context"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders for the admin order board.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns orders sorted by creation time, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	sql := `
		SELECT
			id,
			order_number,
			quote_id,
			status,
			piece_count,
			unit_price,
			lead_time,
			design_image_url,
			steps,
			created_at,
			updated_at
		FROM orders`
	var args []any
	if status, ok := query.Status(); ok {
		sql += " WHERE status = ?"
		args = append(args, status.String())
	}
	sql += " ORDER BY created_at DESC, id"

	rows, err := tx.Raw(sql, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("list orders", err)
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, quoteID          uuid.UUID
			number, status       string
			pieceCount           int
			unitPrice            decimal.Decimal
			leadTime, designURL  string
			steps                datatypes.JSONType[map[string]string]
			createdAt, updatedAt time.Time
		)
		err = rows.Scan(
			&id,
			&number,
			&quoteID,
			&status,
			&pieceCount,
			&unitPrice,
			&leadTime,
			&designURL,
			&steps,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, errs.NewStoreUnavailableError("list orders", err)
		}

		view, viewErr := orderStatusFromRow(id, number, status, steps.Data())
		if viewErr != nil {
			return nil, viewErr
		}
		quoteRef, idErr := kernel.UUIDFromBytes(quoteID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		orders = append(orders, GetOrdersQueryResponse{
			ID:             view.ID,
			OrderNumber:    view.OrderNumber,
			QuoteID:        quoteRef,
			Status:         view.Status,
			PieceCount:     pieceCount,
			UnitPrice:      price,
			LeadTime:       leadTime,
			DesignImageURL: designURL,
			Steps:          view.Steps,
			CreatedAt:      createdAt,
			UpdatedAt:      updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError("list orders", err)
	}

	return orders, nil
}
