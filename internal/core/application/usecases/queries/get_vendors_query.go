package queries

import (
	"errors"
	"strings"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/vendor"
	"sourcing/internal/pkg/guard"
)

var (
	ErrGetVendorsQueryIsNotConstructed = errors.New(
		"GetVendorsQuery must be created via NewGetVendorsQuery constructor",
	)
)

// GetVendorsQuery lists vendors newest first.
//
// The verification filter is one of "All Status", "Verified", "Under Review"
// or "Unverified"; an empty filter matches every vendor. Search matches the
// company name, the primary contact's email and names, and the GST and PAN
// numbers, ignoring case.
type GetVendorsQuery struct {
	statuses []vendor.Status
	search   string

	guard guard.ConstructorGuard
}

func NewGetVendorsQuery(verification, search string) (GetVendorsQuery, error) {
	statuses, err := vendor.StatusesFor(verification)
	if err != nil {
		return GetVendorsQuery{}, err
	}

	return GetVendorsQuery{
		statuses: statuses,
		search:   strings.TrimSpace(search),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetVendorsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorsQueryIsNotConstructed)
}

func (q GetVendorsQuery) Statuses() []vendor.Status { return q.statuses }
func (q GetVendorsQuery) Search() string            { return q.search }

// VendorView is a vendor as shown to the admin.
type VendorView struct {
	ID           kernel.UUID
	Profile      vendor.Profile
	Status       vendor.Status
	Verification vendor.Verification
	DocumentURLs map[string]string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasDocuments reports whether the vendor uploaded any document at all.
func (v VendorView) HasDocuments() bool {
	return len(v.DocumentURLs) > 0
}
