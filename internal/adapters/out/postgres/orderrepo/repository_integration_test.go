package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"sourcing/internal/adapters/out/postgres/orderrepo"
	"sourcing/internal/adapters/out/postgres/pgtest"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.db = database.DB
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) createOrder() *order.Order {
	price, err := kernel.MoneyFromString("4.75")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(), kernel.NewUUID(), order.Terms{
		PieceCount:     500,
		UnitPrice:      price,
		LeadTime:       "30 days",
		DesignImageURL: "https://res.cloudinary.com/demo/image/upload/v1/quotes/front.jpg",
	}, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsEveryField() {
	ctx := context.Background()
	o := suite.createOrder()

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.Number(), stored.Number())
	suite.True(o.QuoteID().IsEqual(stored.QuoteID()))
	suite.Equal(order.Confirmed, stored.Status())
	suite.Equal(500, stored.Terms().PieceCount)
	suite.True(o.Terms().UnitPrice.IsEqual(stored.Terms().UnitPrice))
	suite.Equal(o.Terms().DesignImageURL, stored.Terms().DesignImageURL)
	suite.Equal(0, stored.Steps().CompletedCount())
	suite.Len(stored.Steps().Map(), order.StepCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SecondOrderForQuote_ReturnsConflict() {
	ctx := context.Background()
	first := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(), first.QuoteID(), first.Terms(), time.Now())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)

	var conflict *errs.ConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal("quoteId", conflict.ParamName)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReportsOrderNumber() {
	ctx := context.Background()
	first := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := order.NewOrder(kernel.NewUUID(), first.Number(), kernel.NewUUID(), first.Terms(), time.Now())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)

	var conflict *errs.ConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal("orderNumber", conflict.ParamName)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByQuote() {
	ctx := context.Background()
	o := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	found, err := suite.repository.GetByQuote(ctx, o.QuoteID())
	suite.Require().NoError(err)
	suite.True(found.IsEqual(o))

	_, err = suite.repository.GetByQuote(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateProgress_WritesOnlyTheStepAndStatus() {
	ctx := context.Background()
	o := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	now := time.Now().UTC()
	change, err := o.AdvanceStep(order.Production, order.StepCompleted, now)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.UpdateProgress(ctx, change, now))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProduction, stored.Status())
	for name, status := range stored.Steps().All() {
		if name == order.Production {
			suite.Equal(order.StepCompleted, status)
			continue
		}
		suite.Equal(order.NotStarted, status, name.String())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateProgress_WithoutStatusKeepsStoredStatus() {
	ctx := context.Background()
	o := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	change, err := o.AdvanceStep(order.Packaging, order.InProgress, time.Now())
	suite.Require().NoError(err)
	suite.Nil(change.OverallStatus)

	suite.Require().NoError(suite.repository.UpdateProgress(ctx, change, time.Now()))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, stored.Status())
	packaging, err := stored.Steps().Get(order.Packaging)
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, packaging)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateProgress_Unknown_ReturnsNotFound() {
	err := suite.repository.UpdateProgress(context.Background(), order.StepChange{
		OrderID:    kernel.NewUUID(),
		Step:       order.Production,
		StepStatus: order.InProgress,
	}, time.Now())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// Two transactions completing different steps of the same order must both
// land: the row lock taken by GetForUpdate serializes them.
func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesConcurrentAdvances() {
	ctx := context.Background()
	o := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	steps := []order.StepName{order.SampleConfirmation, order.FabricInhoused, order.FabricQualityCheck, order.Production}
	var wg sync.WaitGroup
	errCh := make(chan error, len(steps))
	for _, step := range steps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- suite.db.Transaction(func(tx *gorm.DB) error {
				repo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
				locked, err := repo.GetForUpdate(ctx, o.ID())
				if err != nil {
					return err
				}
				now := time.Now()
				change, err := locked.AdvanceStep(step, order.StepCompleted, now)
				if err != nil {
					return err
				}
				return repo.UpdateProgress(ctx, change, now)
			})
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		suite.Require().NoError(err)
	}

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(len(steps), stored.Steps().CompletedCount())
	suite.Equal(order.InProduction, stored.Status())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
