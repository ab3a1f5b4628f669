package queries

import (
	"errors"
	"strings"
	"time"

	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/guard"
)

var (
	ErrGetCompaniesQueryIsNotConstructed = errors.New(
		"GetCompaniesQuery must be created via NewGetCompaniesQuery constructor",
	)
)

// GetCompaniesQuery lists buyer companies newest first. The status filter
// works on the verified flag: "Verified" keeps verified companies, any other
// value except "All Status" keeps the unverified ones. Search matches the
// registered name and the GST tax id, ignoring case.
type GetCompaniesQuery struct {
	verified *bool
	search   string

	guard guard.ConstructorGuard
}

func NewGetCompaniesQuery(status, search string) GetCompaniesQuery {
	return GetCompaniesQuery{
		verified: company.VerifiedFilter(status),
		search:   strings.TrimSpace(search),
		guard:    guard.NewConstructorGuard(),
	}
}

func (q GetCompaniesQuery) Validate() error {
	return q.guard.Validate(ErrGetCompaniesQueryIsNotConstructed)
}

// Verified returns the verified-flag filter and whether one was set.
func (q GetCompaniesQuery) Verified() (bool, bool) {
	if q.verified == nil {
		return false, false
	}
	return *q.verified, true
}

func (q GetCompaniesQuery) Search() string { return q.search }

// CompanyView is a company as shown to the admin.
type CompanyView struct {
	ID                    kernel.UUID
	RegisteredCompanyName string
	GSTTaxID              string
	Profile               company.Profile
	Verification          company.Verification
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
