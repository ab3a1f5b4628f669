package quoterepo

import (
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/quote"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// QuoteDTO is the quotes table. Quotes are submitted by the buyer portal; the
// admin service writes only status and comments.
type QuoteDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShippingAddress   string          `gorm:"not null"`
	Quantity          int             `gorm:"not null"`
	LeadTime          string          `gorm:"not null"`
	TargetPrice       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	FabricComposition string          `gorm:"not null"`
	GSM               string          `gorm:"column:gsm;not null"`
	OrderNotes        string
	OrderSample       bool
	SampleCount       int
	Techpack          string
	ProductImages     pq.StringArray `gorm:"type:text[]"`
	ColorSwatches     pq.StringArray `gorm:"type:text[]"`
	Fabrics           pq.StringArray `gorm:"type:text[]"`
	Miscellaneous     pq.StringArray `gorm:"type:text[]"`
	Status            string         `gorm:"size:16;index;not null"`
	Comments          string         `gorm:"not null"`
	CreatedAt         time.Time      `gorm:"index"`
}

func (QuoteDTO) TableName() string {
	return "quotes"
}

// FromDomain maps a quote to its row.
func FromDomain(q *quote.Quote) QuoteDTO {
	d := q.Details()
	f := q.Files()
	return QuoteDTO{
		ID:                q.ID().Bytes(),
		ShippingAddress:   d.ShippingAddress,
		Quantity:          d.Quantity,
		LeadTime:          d.LeadTime,
		TargetPrice:       d.TargetPrice.Amount(),
		FabricComposition: d.FabricComposition,
		GSM:               d.GSM,
		OrderNotes:        d.OrderNotes,
		OrderSample:       d.OrderSample,
		SampleCount:       d.SampleCount,
		Techpack:          f.Techpack,
		ProductImages:     f.ProductImages,
		ColorSwatches:     f.ColorSwatches,
		Fabrics:           f.Fabrics,
		Miscellaneous:     f.Miscellaneous,
		Status:            q.Status().String(),
		Comments:          q.Comments(),
		CreatedAt:         q.CreatedAt(),
	}
}

func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := quote.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.TargetPrice)
	if err != nil {
		return nil, err
	}

	details := quote.Details{
		ShippingAddress:   dto.ShippingAddress,
		Quantity:          dto.Quantity,
		LeadTime:          dto.LeadTime,
		TargetPrice:       price,
		FabricComposition: dto.FabricComposition,
		GSM:               dto.GSM,
		OrderNotes:        dto.OrderNotes,
		OrderSample:       dto.OrderSample,
		SampleCount:       dto.SampleCount,
	}
	files := quote.Files{
		Techpack:      dto.Techpack,
		ProductImages: dto.ProductImages,
		ColorSwatches: dto.ColorSwatches,
		Fabrics:       dto.Fabrics,
		Miscellaneous: dto.Miscellaneous,
	}

	return quote.RestoreQuote(id, details, files, status, dto.Comments, dto.CreatedAt)
}
