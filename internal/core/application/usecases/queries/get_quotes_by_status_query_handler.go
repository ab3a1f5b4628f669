package queries

import (
	"context"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/quote"
	"sourcing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetQuotesByStatusQueryHandler backs the pending, accepted and rejected
// quote screens of the admin portal.
type GetQuotesByStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetQuotesByStatusQueryHandler(db *gorm.DB) GetQuotesByStatusQueryHandler {
	return GetQuotesByStatusQueryHandler{db: db}
}

func (h GetQuotesByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetQuotesByStatusQuery,
) (GetQuotesByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuotesByStatusQueryResponse{}, err
	}

	quotes, err := h.listQuotes(ctx, query.Status())
	if err != nil {
		return GetQuotesByStatusQueryResponse{}, err
	}

	stats, err := h.countQuotes(ctx)
	if err != nil {
		return GetQuotesByStatusQueryResponse{}, err
	}

	return GetQuotesByStatusQueryResponse{Quotes: quotes, Stats: stats}, nil
}

func (h GetQuotesByStatusQueryHandler) listQuotes(ctx context.Context, status quote.Status) ([]QuoteView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipping_address,
			quantity,
			lead_time,
			target_price,
			fabric_composition,
			gsm,
			order_notes,
			order_sample,
			sample_count,
			techpack,
			product_images,
			color_swatches,
			fabrics,
			miscellaneous,
			comments,
			created_at
		FROM quotes
		WHERE status = ?
		ORDER BY created_at DESC, id
	`, status.String()).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("list quotes", err)
	}
	defer rows.Close()

	quotes := make([]QuoteView, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			details     quote.Details
			files       quote.Files
			targetPrice decimal.Decimal
			notes       *string
			techpack    *string
			images      pq.StringArray
			swatches    pq.StringArray
			fabrics     pq.StringArray
			misc        pq.StringArray
			comments    string
			createdAt   time.Time
		)
		err = rows.Scan(
			&id,
			&details.ShippingAddress,
			&details.Quantity,
			&details.LeadTime,
			&targetPrice,
			&details.FabricComposition,
			&details.GSM,
			&notes,
			&details.OrderSample,
			&details.SampleCount,
			&techpack,
			&images,
			&swatches,
			&fabrics,
			&misc,
			&comments,
			&createdAt,
		)
		if err != nil {
			return nil, errs.NewStoreUnavailableError("list quotes", err)
		}

		quoteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(targetPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		details.TargetPrice = price
		if notes != nil {
			details.OrderNotes = *notes
		}
		if techpack != nil {
			files.Techpack = *techpack
		}
		files.ProductImages = images
		files.ColorSwatches = swatches
		files.Fabrics = fabrics
		files.Miscellaneous = misc

		quotes = append(quotes, QuoteView{
			ID:        quoteID,
			Details:   details,
			Files:     files,
			Status:    status,
			Comments:  comments,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError("list quotes", err)
	}

	return quotes, nil
}

func (h GetQuotesByStatusQueryHandler) countQuotes(ctx context.Context) (QuoteStats, error) {
	var stats QuoteStats
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM quotes
	`, quote.Pending.String(), quote.Accepted.String(), quote.Rejected.String()).
		Row().
		Scan(&stats.Total, &stats.Pending, &stats.Accepted, &stats.Rejected)
	if err != nil {
		return QuoteStats{}, errs.NewStoreUnavailableError("count quotes", err)
	}
	return stats, nil
}
