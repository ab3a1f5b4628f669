package productrepo

import (
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ProductDTO is the products table. Code is the catalog's own productId.
type ProductDTO struct {
	ID               uuid.UUID                               `gorm:"type:uuid;primaryKey"`
	Code             string                                  `gorm:"uniqueIndex;not null"`
	Name             string                                  `gorm:"not null"`
	Description      string                                  `gorm:"not null;default:''"`
	Category         string                                  `gorm:"index"`
	PriceRange       string                                  `gorm:"not null;default:''"`
	QuantityPerOrder string                                  `gorm:"not null;default:''"`
	ProductImages    pq.StringArray                          `gorm:"type:text[]"`
	MeasurementSpecs pq.StringArray                          `gorm:"type:text[]"`
	Attributes       datatypes.JSONType[[]map[string]string] `gorm:"type:jsonb;not null"`
	CreatedAt        time.Time                               `gorm:"index"`
	UpdatedAt        time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

// attributesFromJSON converts stored attribute maps.
func attributesFromJSON(stored []map[string]string) []product.Attribute {
	attrs := make([]product.Attribute, 0, len(stored))
	for _, fields := range stored {
		attrs = append(attrs, product.Attribute{Fields: fields})
	}
	return attrs
}

func fromDomain(p *product.Product) ProductDTO {
	d := p.Details()
	m := p.Media()

	attrs := make([]map[string]string, 0, len(p.Attributes()))
	for _, a := range p.Attributes() {
		attrs = append(attrs, a.Fields)
	}

	return ProductDTO{
		ID:               p.ID().Bytes(),
		Code:             d.Code,
		Name:             d.Name,
		Description:      d.Description,
		Category:         d.Category,
		PriceRange:       d.PriceRange,
		QuantityPerOrder: d.QuantityPerOrder,
		ProductImages:    m.ProductImages,
		MeasurementSpecs: m.MeasurementSpecs,
		Attributes:       datatypes.NewJSONType(attrs),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id,
		product.Details{
			Code:             dto.Code,
			Name:             dto.Name,
			Description:      dto.Description,
			Category:         dto.Category,
			PriceRange:       dto.PriceRange,
			QuantityPerOrder: dto.QuantityPerOrder,
		},
		product.Media{
			ProductImages:    dto.ProductImages,
			MeasurementSpecs: dto.MeasurementSpecs,
		},
		attributesFromJSON(dto.Attributes.Data()),
		dto.CreatedAt, dto.UpdatedAt,
	)
}
