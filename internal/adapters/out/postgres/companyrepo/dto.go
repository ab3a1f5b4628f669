package companyrepo

import (
	"time"

	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CompanyDTO is the companies table. The editable and verification fields are
// columns; the rest of the registration form is a jsonb document.
type CompanyDTO struct {
	ID                    uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	RegisteredCompanyName string                              `gorm:"not null"`
	GSTTaxID              string                              `gorm:"column:gst_tax_id"`
	Profile               datatypes.JSONType[company.Profile] `gorm:"type:jsonb;not null"`
	HasBeenVerified       bool                                `gorm:"index;not null;default:false"`
	Status                string                              `gorm:"size:16;not null"`
	VerifiedAt            *time.Time
	VerifiedBy            string
	RejectionReason       string
	CreatedAt             time.Time `gorm:"index"`
	UpdatedAt             time.Time
}

func (CompanyDTO) TableName() string {
	return "companies"
}

// FromDomain maps a company to its row.
func FromDomain(c *company.Company) CompanyDTO {
	v := c.Verification()
	return CompanyDTO{
		ID:                    c.ID().Bytes(),
		RegisteredCompanyName: c.RegisteredCompanyName(),
		GSTTaxID:              c.GSTTaxID(),
		Profile:               datatypes.NewJSONType(c.Profile()),
		HasBeenVerified:       v.HasBeenVerified,
		Status:                v.Status.String(),
		VerifiedAt:            v.VerifiedAt,
		VerifiedBy:            v.VerifiedBy,
		RejectionReason:       v.RejectionReason,
		CreatedAt:             c.CreatedAt(),
		UpdatedAt:             c.UpdatedAt(),
	}
}

func toDomain(dto CompanyDTO) (*company.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := company.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return company.RestoreCompany(id, dto.RegisteredCompanyName, dto.GSTTaxID, dto.Profile.Data(), company.Verification{
		HasBeenVerified: dto.HasBeenVerified,
		Status:          status,
		VerifiedAt:      dto.VerifiedAt,
		VerifiedBy:      dto.VerifiedBy,
		RejectionReason: dto.RejectionReason,
	}, dto.CreatedAt, dto.UpdatedAt)
}
