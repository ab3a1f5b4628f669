package vendorrepo_test

import (
	"context"
	"testing"
	"time"

	"sourcing/internal/adapters/out/postgres/pgtest"
	"sourcing/internal/adapters/out/postgres/vendorrepo"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/vendor"
	"sourcing/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type VendorRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *vendorrepo.GormVendorRepository
	tracker    *MockAggregateTracker
}

func (suite *VendorRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *VendorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.repository = vendorrepo.NewGormVendorRepository(suite.database.DB, suite.tracker)
}

func (suite *VendorRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *VendorRepositoryIntegrationTestSuite) seedVendor() *vendor.Vendor {
	now := time.Now().UTC().Truncate(time.Microsecond)
	v, err := vendor.RestoreVendor(kernel.NewUUID(), vendor.Profile{
		PrimaryContact: vendor.Contact{FirstName: "Meera", LastName: "Iyer", Email: "meera@knitworks.example"},
		Company:        vendor.Company{Name: "Knit Works", ProminentBrands: []string{"Northwind"}},
		Documents: vendor.Documents{
			GSTNumber:      "33AAAAA0000A1Z5",
			GSTDocument:    "https://cdn.example/gst.pdf",
			Certifications: map[string]string{"gots": "https://cdn.example/gots.pdf"},
		},
	}, vendor.Pending, now, now)
	suite.Require().NoError(err)

	dto := vendorrepo.FromDomain(v)
	suite.Require().NoError(suite.database.DB.Create(&dto).Error)
	return v
}

func (suite *VendorRepositoryIntegrationTestSuite) TestGet_RoundTripsProfile() {
	v := suite.seedVendor()

	stored, err := suite.repository.Get(context.Background(), v.ID())

	suite.Require().NoError(err)
	suite.Equal(v.Profile(), stored.Profile())
	suite.Equal(vendor.Pending, stored.Status())
}

func (suite *VendorRepositoryIntegrationTestSuite) TestUpdateStatus() {
	ctx := context.Background()
	v := suite.seedVendor()
	suite.Require().NoError(v.Approve(time.Now().UTC()))
	suite.tracker.On("TrackAggregate", v.ID(), v).Once()

	suite.Require().NoError(suite.repository.UpdateStatus(ctx, v))

	stored, err := suite.repository.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal(vendor.Approved, stored.Status())
	suite.Equal(v.Profile(), stored.Profile())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VendorRepositoryIntegrationTestSuite) TestUpdateStatus_Unknown_ReturnsNotFound() {
	v, err := vendor.RestoreVendor(kernel.NewUUID(), vendor.Profile{}, vendor.Approved, time.Now(), time.Now())
	suite.Require().NoError(err)

	err = suite.repository.UpdateStatus(context.Background(), v)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func TestVendorRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(VendorRepositoryIntegrationTestSuite))
}
