package queries

import (
	"context"
	"strings"
	"time"

	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const companyColumns = `
		SELECT
			id,
			registered_company_name,
			COALESCE(gst_tax_id, ''),
			profile,
			has_been_verified,
			status,
			verified_at,
			COALESCE(verified_by, ''),
			COALESCE(rejection_reason, ''),
			created_at,
			updated_at
		FROM companies`

// GetCompaniesQueryHandler reads buyer companies for the verification screens.
type GetCompaniesQueryHandler struct {
	db *gorm.DB
}

func NewGetCompaniesQueryHandler(db *gorm.DB) GetCompaniesQueryHandler {
	return GetCompaniesQueryHandler{db: db}
}

func (h GetCompaniesQueryHandler) Handle(ctx context.Context, query GetCompaniesQuery) ([]CompanyView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if verified, ok := query.Verified(); ok {
		where = append(where, "has_been_verified = ?")
		args = append(args, verified)
	}
	if search := query.Search(); search != "" {
		pattern := containsPattern(search)
		where = append(where, "(registered_company_name ILIKE ? OR gst_tax_id ILIKE ?)")
		args = append(args, pattern, pattern)
	}

	sql := companyColumns
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY created_at DESC, id"

	return scanCompanies(ctx, h.db, "list companies", sql, args...)
}

func scanCompanies(ctx context.Context, db *gorm.DB, operation, sql string, args ...any) ([]CompanyView, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError(operation, err)
	}
	defer rows.Close()

	companies := make([]CompanyView, 0)
	for rows.Next() {
		var (
			id                   uuid.UUID
			view                 CompanyView
			profile              datatypes.JSONType[company.Profile]
			rawStatus            string
			verifiedAt           *time.Time
			createdAt, updatedAt time.Time
		)
		err = rows.Scan(
			&id,
			&view.RegisteredCompanyName,
			&view.GSTTaxID,
			&profile,
			&view.Verification.HasBeenVerified,
			&rawStatus,
			&verifiedAt,
			&view.Verification.VerifiedBy,
			&view.Verification.RejectionReason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, errs.NewStoreUnavailableError(operation, err)
		}

		companyID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		status, statusErr := company.ParseStatus(rawStatus)
		if statusErr != nil {
			return nil, statusErr
		}

		view.ID = companyID
		view.Profile = profile.Data()
		view.Verification.Status = status
		view.Verification.VerifiedAt = verifiedAt
		view.CreatedAt = createdAt
		view.UpdatedAt = updatedAt
		companies = append(companies, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError(operation, err)
	}

	return companies, nil
}
