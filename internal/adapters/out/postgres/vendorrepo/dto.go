package vendorrepo

import (
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/vendor"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VendorDTO is the vendors table. The onboarding profile is a single jsonb
// document; listing queries search inside it.
type VendorDTO struct {
	ID        uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	Profile   datatypes.JSONType[vendor.Profile] `gorm:"type:jsonb;not null"`
	Status    string                             `gorm:"size:16;index;not null"`
	CreatedAt time.Time                          `gorm:"index"`
	UpdatedAt time.Time
}

func (VendorDTO) TableName() string {
	return "vendors"
}

// FromDomain maps a vendor to its row.
func FromDomain(v *vendor.Vendor) VendorDTO {
	return VendorDTO{
		ID:        v.ID().Bytes(),
		Profile:   datatypes.NewJSONType(v.Profile()),
		Status:    v.Status().String(),
		CreatedAt: v.CreatedAt(),
		UpdatedAt: v.UpdatedAt(),
	}
}

func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := vendor.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(id, dto.Profile.Data(), status, dto.CreatedAt, dto.UpdatedAt)
}
