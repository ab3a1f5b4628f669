package company

import (
	"errors"
	"strings"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/errs"
)

var ErrCompanyIsNotConstructed = errors.New("Company must be created via RestoreCompany")

// Profile holds the registration data a buyer submitted. The admin portal
// reads it; only the name and tax id are editable here.
type Profile struct {
	UID                    string `json:"uid"`
	ContactPersonName      string `json:"contactPersonName"`
	ContactPhoneNo         string `json:"contactPhoneNo"`
	ContactEmail           string `json:"contactEmail"`
	TaxRegistrationCert    string `json:"taxRegistrationCert"`
	BusinessNo             string `json:"businessNo"`
	CountryOfIncorporation string `json:"countryOfIncorporation"`
	Address                string `json:"address"`
	AddressState           string `json:"addressState"`
	AddressCountry         string `json:"addressCountry"`
	AddressPostcode        string `json:"addressPostcode"`
	BankBranchName         string `json:"bankBranchName"`
	BankState              string `json:"bankState"`
	BankCountry            string `json:"bankCountry"`
	BankPostcode           string `json:"bankPostcode"`
	BankCertificate        string `json:"bankCertificate,omitempty"`
	ImportExportLicense    string `json:"importExportLicense,omitempty"`
}

// Verification is the workflow part of a company record.
type Verification struct {
	HasBeenVerified bool
	Status          Status
	VerifiedAt      *time.Time
	VerifiedBy      string
	RejectionReason string
}

// Patch is a whitelisted partial update. Nil fields are left untouched.
type Patch struct {
	HasBeenVerified       *bool
	RegisteredCompanyName *string
	GSTTaxID              *string
	Status                *Status
	VerifiedBy            *string
	RejectionReason       *string
}

// IsEmpty reports whether the patch carries no field that changes a company.
// VerifiedBy only counts together with an Approved status.
func (p Patch) IsEmpty() bool {
	return p.HasBeenVerified == nil &&
		p.RegisteredCompanyName == nil &&
		p.GSTTaxID == nil &&
		p.Status == nil &&
		p.RejectionReason == nil
}

// Company is a buyer organisation going through verification.
type Company struct {
	id                    kernel.UUID
	registeredCompanyName string
	gstTaxID              string
	profile               Profile
	verification          Verification
	createdAt             time.Time
	updatedAt             time.Time

	isConstructed bool
}

// RestoreCompany rebuilds a company from persisted state.
func RestoreCompany(
	id kernel.UUID,
	registeredCompanyName, gstTaxID string,
	profile Profile,
	verification Verification,
	createdAt, updatedAt time.Time,
) (*Company, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("id", err))
	}
	if err := verification.Status.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Company{
		id:                    id,
		registeredCompanyName: registeredCompanyName,
		gstTaxID:              gstTaxID,
		profile:               profile,
		verification:          verification,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		isConstructed:         true,
	}, nil
}

func (c *Company) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompanyIsNotConstructed
	}
	return nil
}

func (c *Company) ID() kernel.UUID               { return c.id }
func (c *Company) RegisteredCompanyName() string { return c.registeredCompanyName }
func (c *Company) GSTTaxID() string              { return c.gstTaxID }
func (c *Company) Profile() Profile              { return c.profile }
func (c *Company) Verification() Verification    { return c.verification }
func (c *Company) CreatedAt() time.Time          { return c.createdAt }
func (c *Company) UpdatedAt() time.Time          { return c.updatedAt }

// ApplyPatch applies a whitelisted admin update.
//
// Business rules:
//   - An empty patch is rejected
//   - Setting status Approved marks the company verified and stamps verifiedAt
//     (and verifiedBy when given)
//   - Setting any other status clears verifiedAt and verifiedBy but leaves
//     hasBeenVerified alone unless the patch sets it explicitly
//   - A blank registered company name is rejected
func (c *Company) ApplyPatch(p Patch, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if p.IsEmpty() {
		return errs.NewValueIsRequiredErrorWithCause("patch", errors.New("no valid fields to update"))
	}

	var errList []error
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if p.RegisteredCompanyName != nil && strings.TrimSpace(*p.RegisteredCompanyName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("registeredCompanyName"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if p.HasBeenVerified != nil {
		c.verification.HasBeenVerified = *p.HasBeenVerified
	}
	if p.RegisteredCompanyName != nil {
		c.registeredCompanyName = strings.TrimSpace(*p.RegisteredCompanyName)
	}
	if p.GSTTaxID != nil {
		c.gstTaxID = strings.TrimSpace(*p.GSTTaxID)
	}
	if p.RejectionReason != nil {
		c.verification.RejectionReason = *p.RejectionReason
	}

	if p.Status != nil {
		c.verification.Status = *p.Status
		if *p.Status == Approved {
			verifiedAt := now
			c.verification.HasBeenVerified = true
			c.verification.VerifiedAt = &verifiedAt
			if p.VerifiedBy != nil {
				c.verification.VerifiedBy = *p.VerifiedBy
			}
		} else {
			c.verification.VerifiedAt = nil
			c.verification.VerifiedBy = ""
		}
	}

	c.updatedAt = now
	return nil
}
