package commands_test

import (
	"errors"
	"testing"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/core/domain/model/quote"
	"sourcing/internal/pkg/clock"
	"sourcing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedQuote(t *testing.T, status quote.Status) *quote.Quote {
	t.Helper()

	price, err := kernel.MoneyFromString("3.20")
	require.NoError(t, err)

	q, err := quote.RestoreQuote(kernel.NewUUID(), quote.Details{
		ShippingAddress:   "12 Harbour Road, Chennai",
		Quantity:          1200,
		LeadTime:          "45 days",
		TargetPrice:       price,
		FabricComposition: "100% cotton",
		GSM:               "180",
	}, quote.Files{ProductImages: []string{"https://res.cloudinary.com/demo/image/upload/v1/quotes/front.jpg"}},
		status, quote.DefaultComments, now)
	require.NoError(t, err)
	return q
}

func TestAcceptQuoteCommandHandler_CreatesOrder(t *testing.T) {
	ctx := t.Context()
	q := storedQuote(t, quote.Pending)
	cmd, err := commands.NewAcceptQuoteCommand(q.ID())
	require.NoError(t, err)

	quotes := new(MockQuoteRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("QuoteRepository").Return(quotes)
	uow.On("OrderRepository").Return(orders)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once(),
		orders.On("GetByQuote", ctx, q.ID()).Return(nil, errs.NewObjectNotFoundError("quoteId", q.ID())).Once(),
		quotes.On("Update", ctx, q).Return(nil).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAcceptQuoteCommandHandler(quoteFactory{newFactory(uow)}, clock.NewFixed(now))
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.OrderCreated)
	assert.Equal(t, quote.Accepted, result.Quote.Status())
	require.NotNil(t, result.Order)
	assert.Equal(t, order.Confirmed, result.Order.Status())
	assert.True(t, result.Order.QuoteID().IsEqual(q.ID()))
	assert.Equal(t, 1200, result.Order.Terms().PieceCount)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/v1/quotes/front.jpg", result.Order.Terms().DesignImageURL)
	assert.Equal(t, 0, result.Order.Steps().CompletedCount())
	uow.AssertExpectations(t)
	quotes.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestAcceptQuoteCommandHandler_SecondAcceptReturnsExistingOrder(t *testing.T) {
	ctx := t.Context()
	q := storedQuote(t, quote.Accepted)
	existing, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(), q.ID(), q.OrderTerms(), now)
	require.NoError(t, err)
	cmd, err := commands.NewAcceptQuoteCommand(q.ID())
	require.NoError(t, err)

	quotes := new(MockQuoteRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("QuoteRepository").Return(quotes)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil).Once()
	quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()
	orders.On("GetByQuote", ctx, q.ID()).Return(existing, nil).Once()
	quotes.On("Update", ctx, q).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAcceptQuoteCommandHandler(quoteFactory{newFactory(uow)}, clock.NewFixed(now))
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.OrderCreated)
	assert.Same(t, existing, result.Order)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAcceptQuoteCommandHandler_NumberCollisionRetriesWithNewNumber(t *testing.T) {
	ctx := t.Context()
	q := storedQuote(t, quote.Pending)
	cmd, err := commands.NewAcceptQuoteCommand(q.ID())
	require.NoError(t, err)

	quotes := new(MockQuoteRepository)
	orders := new(MockOrderRepository)
	quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Twice()
	orders.On("GetByQuote", ctx, q.ID()).Return(nil, errs.NewObjectNotFoundError("quoteId", q.ID())).Twice()
	quotes.On("Update", ctx, q).Return(nil).Twice()

	var numbers []order.Number
	orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { numbers = append(numbers, args.Get(1).(*order.Order).Number()) }).
		Return(errs.NewConflictError("orderNumber", "ORD-1A2B3C4D")).Once()
	orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { numbers = append(numbers, args.Get(1).(*order.Order).Number()) }).
		Return(nil).Once()

	first := new(MockUoW)
	first.On("QuoteRepository").Return(quotes)
	first.On("OrderRepository").Return(orders)
	first.On("Begin", ctx).Return(nil).Once()
	first.On("Rollback", ctx).Return(nil).Once()

	second := new(MockUoW)
	second.On("QuoteRepository").Return(quotes)
	second.On("OrderRepository").Return(orders)
	second.On("Begin", ctx).Return(nil).Once()
	second.On("Commit", ctx).Return(nil).Once()
	second.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAcceptQuoteCommandHandler(quoteFactory{newFactory(first, second)}, clock.NewFixed(now))
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.OrderCreated)
	require.Len(t, numbers, 2)
	assert.NotEqual(t, numbers[0], numbers[1])
	first.AssertNotCalled(t, "Commit", mock.Anything)
	second.AssertExpectations(t)
	quotes.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestAcceptQuoteCommandHandler_ConcurrentInsertReturnsWinner(t *testing.T) {
	ctx := t.Context()
	q := storedQuote(t, quote.Pending)
	cmd, err := commands.NewAcceptQuoteCommand(q.ID())
	require.NoError(t, err)

	winner, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(), q.ID(), q.OrderTerms(), now)
	require.NoError(t, err)

	quotes := new(MockQuoteRepository)
	orders := new(MockOrderRepository)
	first := new(MockUoW)
	first.On("QuoteRepository").Return(quotes)
	first.On("OrderRepository").Return(orders)
	first.On("Begin", ctx).Return(nil).Once()
	first.On("Rollback", ctx).Return(nil).Once()
	quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()
	orders.On("GetByQuote", ctx, q.ID()).Return(nil, errs.NewObjectNotFoundError("quoteId", q.ID())).Once()
	quotes.On("Update", ctx, q).Return(nil).Once()
	orders.On("Add", ctx, mock.Anything).Return(errs.NewConflictError("quoteId", q.ID())).Once()

	second := new(MockUoW)
	second.On("QuoteRepository").Return(quotes)
	second.On("OrderRepository").Return(orders)
	second.On("Begin", ctx).Return(nil).Once()
	second.On("Rollback", ctx).Return(nil).Once()
	quotes.On("Get", ctx, q.ID()).Return(q, nil).Once()
	orders.On("GetByQuote", ctx, q.ID()).Return(winner, nil).Once()

	h := commands.NewAcceptQuoteCommandHandler(quoteFactory{newFactory(first, second)}, clock.NewFixed(now))
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.OrderCreated)
	assert.Same(t, winner, result.Order)
	first.AssertNotCalled(t, "Commit", mock.Anything)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestAcceptQuoteCommandHandler_QuoteNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAcceptQuoteCommand(id)
	require.NoError(t, err)

	quotes := new(MockQuoteRepository)
	uow := new(MockUoW)
	uow.On("QuoteRepository").Return(quotes)
	uow.On("OrderRepository").Return(new(MockOrderRepository))
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	quotes.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("quoteId", id)).Once()

	h := commands.NewAcceptQuoteCommandHandler(quoteFactory{newFactory(uow)}, clock.NewFixed(now))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewAcceptQuoteCommand_RequiresID(t *testing.T) {
	_, err := commands.NewAcceptQuoteCommand(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRejectQuoteCommandHandler(t *testing.T) {
	t.Run("should reject a pending quote with trimmed comments", func(t *testing.T) {
		ctx := t.Context()
		q := storedQuote(t, quote.Pending)
		cmd, err := commands.NewRejectQuoteCommand(q.ID(), "  price too low  ")
		require.NoError(t, err)

		quotes := new(MockQuoteRepository)
		uow := new(MockUoW)
		uow.On("QuoteRepository").Return(quotes)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once(),
			quotes.On("Update", ctx, q).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewRejectQuoteCommandHandler(quoteFactory{newFactory(uow)})
		rejected, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, quote.Rejected, rejected.Status())
		assert.Equal(t, "price too low", rejected.Comments())
		uow.AssertExpectations(t)
	})

	t.Run("should refuse to reject an accepted quote", func(t *testing.T) {
		ctx := t.Context()
		q := storedQuote(t, quote.Accepted)
		cmd, err := commands.NewRejectQuoteCommand(q.ID(), "changed our mind")
		require.NoError(t, err)

		quotes := new(MockQuoteRepository)
		uow := new(MockUoW)
		uow.On("QuoteRepository").Return(quotes)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()

		h := commands.NewRejectQuoteCommandHandler(quoteFactory{newFactory(uow)})
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		quotes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should require comments", func(t *testing.T) {
		_, err := commands.NewRejectQuoteCommand(kernel.NewUUID(), "   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewReconcileAcceptedQuotesCommand_BatchBounds(t *testing.T) {
	for _, size := range []int{0, -1, 501} {
		_, err := commands.NewReconcileAcceptedQuotesCommand(size)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "size %d", size)
	}

	cmd, err := commands.NewReconcileAcceptedQuotesCommand(50)
	require.NoError(t, err)
	assert.Equal(t, 50, cmd.BatchSize())
}

func TestReconcileAcceptedQuotesCommandHandler(t *testing.T) {
	ctx := t.Context()
	ok := storedQuote(t, quote.Accepted)
	broken := storedQuote(t, quote.Accepted)
	cmd, err := commands.NewReconcileAcceptedQuotesCommand(10)
	require.NoError(t, err)

	quotes := new(MockQuoteRepository)
	orders := new(MockOrderRepository)

	lister := new(MockUoW)
	lister.On("QuoteRepository").Return(quotes)
	quotes.On("ListAcceptedWithoutOrder", ctx, 10).Return([]*quote.Quote{ok, broken}, nil).Once()

	okUoW := new(MockUoW)
	okUoW.On("QuoteRepository").Return(quotes)
	okUoW.On("OrderRepository").Return(orders)
	okUoW.On("Begin", ctx).Return(nil).Once()
	okUoW.On("Commit", ctx).Return(nil).Once()
	okUoW.On("Rollback", ctx).Return(nil).Once()
	quotes.On("GetForUpdate", ctx, ok.ID()).Return(ok, nil).Once()
	orders.On("GetByQuote", ctx, ok.ID()).Return(nil, errs.NewObjectNotFoundError("quoteId", ok.ID())).Once()
	quotes.On("Update", ctx, ok).Return(nil).Once()
	orders.On("Add", ctx, mock.Anything).Return(nil).Once()

	brokenUoW := new(MockUoW)
	brokenUoW.On("Begin", ctx).Return(errors.New("connection refused")).Once()

	f := newFactory(lister, okUoW, brokenUoW)
	accept := commands.NewAcceptQuoteCommandHandler(quoteFactory{f}, clock.NewFixed(now))
	h := commands.NewReconcileAcceptedQuotesCommandHandler(quoteFactory{f}, accept)

	created, err := h.Handle(ctx, cmd)

	assert.Equal(t, 1, created)
	require.Error(t, err)
	assert.Contains(t, err.Error(), broken.ID().String())
	okUoW.AssertExpectations(t)
	brokenUoW.AssertExpectations(t)
}
