package http

import (
	"net/http"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/core/application/usecases/queries"
	"sourcing/internal/core/domain/model/quote"
	"sourcing/internal/generated/servers"
	"sourcing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// AcceptQuote handles POST /api/orders/accept.
func (s *Server) AcceptQuote(ctx echo.Context) error {
	var body servers.AcceptQuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	quoteID, err := kernelID(body.QuoteId)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsRequiredErrorWithCause("quoteId", err))
	}

	cmd, err := commands.NewAcceptQuoteCommand(quoteID)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.AcceptQuote.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	message := "Quote accepted and order created"
	if !result.OrderCreated {
		message = "Quote already accepted"
	}

	return respond(ctx, http.StatusOK, message, acceptedQuoteJSON{
		Quote:        quoteFromAggregate(result.Quote),
		Order:        orderFromAggregate(result.Order),
		OrderCreated: result.OrderCreated,
	})
}

// RejectQuote handles POST /api/orders/reject.
func (s *Server) RejectQuote(ctx echo.Context) error {
	var body servers.RejectQuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	quoteID, err := kernelID(body.QuoteId)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsRequiredErrorWithCause("quoteId", err))
	}

	cmd, err := commands.NewRejectQuoteCommand(quoteID, body.Comments)
	if err != nil {
		return s.fail(ctx, err)
	}

	q, err := s.handlers.RejectQuote.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Quote rejected", quoteFromAggregate(q))
}

// GetPendingQuotes handles GET /api/orders/pending-quotes.
func (s *Server) GetPendingQuotes(ctx echo.Context) error {
	return s.quotesByStatus(ctx, quote.Pending)
}

// GetAcceptedQuotes handles GET /api/orders/accepted-quotes.
func (s *Server) GetAcceptedQuotes(ctx echo.Context) error {
	return s.quotesByStatus(ctx, quote.Accepted)
}

// GetRejectedQuotes handles GET /api/orders/rejected-quotes.
func (s *Server) GetRejectedQuotes(ctx echo.Context) error {
	return s.quotesByStatus(ctx, quote.Rejected)
}

func (s *Server) quotesByStatus(ctx echo.Context, status quote.Status) error {
	query, err := queries.NewGetQuotesByStatusQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.handlers.GetQuotesByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "", quoteListFromView(response))
}
