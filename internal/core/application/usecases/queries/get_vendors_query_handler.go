package queries

import (
	"context"
	"strings"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/vendor"
	"sourcing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const vendorColumns = `
		SELECT
			id,
			profile,
			status,
			created_at,
			updated_at
		FROM vendors`

// GetVendorsQueryHandler reads vendors for the onboarding review screens.
type GetVendorsQueryHandler struct {
	db *gorm.DB
}

func NewGetVendorsQueryHandler(db *gorm.DB) GetVendorsQueryHandler {
	return GetVendorsQueryHandler{db: db}
}

func (h GetVendorsQueryHandler) Handle(ctx context.Context, query GetVendorsQuery) ([]VendorView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if search := query.Search(); search != "" {
		pattern := containsPattern(search)
		where = append(where, `(
			profile->'company'->>'name' ILIKE ?
			OR profile->'primaryContact'->>'email' ILIKE ?
			OR profile->'primaryContact'->>'firstName' ILIKE ?
			OR profile->'primaryContact'->>'lastName' ILIKE ?
			OR profile->'documents'->>'gstNumber' ILIKE ?
			OR profile->'documents'->>'panNumber' ILIKE ?
		)`)
		for range 6 {
			args = append(args, pattern)
		}
	}
	if statuses := query.Statuses(); len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = s.String()
		}
		where = append(where, "status IN ?")
		args = append(args, values)
	}

	sql := vendorColumns
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY created_at DESC, id"

	return scanVendors(ctx, h.db, "list vendors", sql, args...)
}

func scanVendors(ctx context.Context, db *gorm.DB, operation, sql string, args ...any) ([]VendorView, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError(operation, err)
	}
	defer rows.Close()

	vendors := make([]VendorView, 0)
	for rows.Next() {
		var (
			id                   uuid.UUID
			profile              datatypes.JSONType[vendor.Profile]
			rawStatus            string
			createdAt, updatedAt time.Time
		)
		if err = rows.Scan(&id, &profile, &rawStatus, &createdAt, &updatedAt); err != nil {
			return nil, errs.NewStoreUnavailableError(operation, err)
		}

		vendorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		status, statusErr := vendor.ParseStatus(rawStatus)
		if statusErr != nil {
			return nil, statusErr
		}

		vendors = append(vendors, VendorView{
			ID:           vendorID,
			Profile:      profile.Data(),
			Status:       status,
			Verification: status.Verification(),
			DocumentURLs: profile.Data().DocumentURLs(),
			CreatedAt:    createdAt,
			UpdatedAt:    updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError(operation, err)
	}

	return vendors, nil
}
