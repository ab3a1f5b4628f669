package queries_test

import (
	"testing"

	"sourcing/internal/core/application/usecases/queries"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/core/domain/model/quote"
	"sourcing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetOrderStatusQuery{}.Validate(), queries.ErrGetOrderStatusQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrdersQuery{}.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetQuotesByStatusQuery{}.Validate(), queries.ErrGetQuotesByStatusQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetVendorsQuery{}.Validate(), queries.ErrGetVendorsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetVendorQuery{}.Validate(), queries.ErrGetVendorQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetCompaniesQuery{}.Validate(), queries.ErrGetCompaniesQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetCompanyQuery{}.Validate(), queries.ErrGetCompanyQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetProductsQuery{}.Validate(), queries.ErrGetProductsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetProductQuery{}.Validate(), queries.ErrGetProductQueryIsNotConstructed)
}

func TestNewGetOrderStatusQuery(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetOrderStatusQuery(id)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(id))
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := queries.NewGetOrderStatusQuery(kernel.UUID{})
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewGetOrdersQuery(t *testing.T) {
	query, err := queries.NewGetOrdersQuery("")
	require.NoError(t, err)
	_, ok := query.Status()
	assert.False(t, ok)

	query, err = queries.NewGetOrdersQuery("Completed")
	require.NoError(t, err)
	status, ok := query.Status()
	assert.True(t, ok)
	assert.Equal(t, order.Completed, status)

	_, err = queries.NewGetOrdersQuery("Shipped")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetQuotesByStatusQuery_RejectsUnknownStatus(t *testing.T) {
	_, err := queries.NewGetQuotesByStatusQuery(quote.Unknown)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetVendorsQuery(t *testing.T) {
	query, err := queries.NewGetVendorsQuery("Under Review", "  knit  ")
	require.NoError(t, err)
	assert.Len(t, query.Statuses(), 2)
	assert.Equal(t, "knit", query.Search())

	_, err = queries.NewGetVendorsQuery("Blocked", "")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetCompaniesQuery(t *testing.T) {
	_, ok := queries.NewGetCompaniesQuery("All Status", "").Verified()
	assert.False(t, ok)

	verified, ok := queries.NewGetCompaniesQuery("Verified", "").Verified()
	assert.True(t, ok)
	assert.True(t, verified)

	verified, ok = queries.NewGetCompaniesQuery("Unverified", "").Verified()
	assert.True(t, ok)
	assert.False(t, verified)
}
