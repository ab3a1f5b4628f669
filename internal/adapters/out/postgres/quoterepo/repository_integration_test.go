package quoterepo_test

import (
	"context"
	"testing"
	"time"

	"sourcing/internal/adapters/out/postgres/orderrepo"
	"sourcing/internal/adapters/out/postgres/pgtest"
	"sourcing/internal/adapters/out/postgres/quoterepo"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/core/domain/model/quote"
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

type QuoteRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *quoterepo.GormQuoteRepository
	tracker    *MockAggregateTracker
}

func (suite *QuoteRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *QuoteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = quoterepo.NewGormQuoteRepository(suite.database.DB, suite.tracker)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QuoteRepositoryIntegrationTestSuite) seedQuote(status quote.Status, createdAt time.Time) *quote.Quote {
	price, err := kernel.MoneyFromString("2.10")
	suite.Require().NoError(err)

	q, err := quote.RestoreQuote(kernel.NewUUID(), quote.Details{
		ShippingAddress:   "4 Mill Lane, Tiruppur",
		Quantity:          800,
		LeadTime:          "60 days",
		TargetPrice:       price,
		FabricComposition: "60% cotton 40% polyester",
		GSM:               "220",
		OrderSample:       true,
		SampleCount:       2,
	}, quote.Files{
		Techpack:      "https://cdn.example/techpack.pdf",
		ProductImages: []string{"https://cdn.example/front.jpg", "https://cdn.example/back.jpg"},
	}, status, quote.DefaultComments, createdAt)
	suite.Require().NoError(err)

	dto := quoterepo.FromDomain(q)
	suite.Require().NoError(suite.database.DB.Create(&dto).Error)
	return q
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestGet_RoundTripsArraysAndPrice() {
	q := suite.seedQuote(quote.Pending, time.Now().UTC())

	stored, err := suite.repository.Get(context.Background(), q.ID())

	suite.Require().NoError(err)
	suite.Equal(q.Files().ProductImages, stored.Files().ProductImages)
	suite.True(q.Details().TargetPrice.IsEqual(stored.Details().TargetPrice))
	suite.Equal(quote.Pending, stored.Status())
	suite.Equal(quote.DefaultComments, stored.Comments())
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestUpdate_PersistsReviewState() {
	ctx := context.Background()
	q := suite.seedQuote(quote.Pending, time.Now().UTC())
	suite.Require().NoError(q.Reject("fabric not available"))

	suite.Require().NoError(suite.repository.Update(ctx, q))

	stored, err := suite.repository.Get(ctx, q.ID())
	suite.Require().NoError(err)
	suite.Equal(quote.Rejected, stored.Status())
	suite.Equal("fabric not available", stored.Comments())
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestListAcceptedWithoutOrder() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)
	older := suite.seedQuote(quote.Accepted, base)
	newer := suite.seedQuote(quote.Accepted, base.Add(time.Minute))
	withOrder := suite.seedQuote(quote.Accepted, base.Add(2*time.Minute))
	suite.seedQuote(quote.Pending, base)

	o, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(), withOrder.ID(), withOrder.OrderTerms(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker).Add(ctx, o))

	quotes, err := suite.repository.ListAcceptedWithoutOrder(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(quotes, 2)
	suite.True(quotes[0].ID().IsEqual(older.ID()))
	suite.True(quotes[1].ID().IsEqual(newer.ID()))

	limited, err := suite.repository.ListAcceptedWithoutOrder(ctx, 1)
	suite.Require().NoError(err)
	suite.Len(limited, 1)
}

func TestQuoteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteRepositoryIntegrationTestSuite))
}
