package http

import (
	"context"
	"log/slog"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/core/application/usecases/queries"
	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/core/domain/model/product"
	"sourcing/internal/core/domain/model/quote"
	"sourcing/internal/core/domain/model/vendor"
	"sourcing/internal/core/ports"
	"sourcing/internal/generated/servers"
)

// Handler is a use case returning a result. Every command and query handler
// of the application layer satisfies it.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// CommandHandler is a use case returning only an error.
type CommandHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers are the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	AdvanceProductionStep Handler[commands.AdvanceProductionStepCommand, *order.Order]
	AcceptQuote           Handler[commands.AcceptQuoteCommand, commands.AcceptQuoteResult]
	RejectQuote           Handler[commands.RejectQuoteCommand, *quote.Quote]
	ChangeVendorStatus    Handler[commands.ChangeVendorStatusCommand, *vendor.Vendor]
	UpdateCompany         Handler[commands.UpdateCompanyCommand, *company.Company]
	DeleteCompany         CommandHandler[commands.DeleteCompanyCommand]
	CreateProduct         Handler[commands.CreateProductCommand, *product.Product]
	UpdateProduct         Handler[commands.UpdateProductCommand, *product.Product]
	DeleteProduct         CommandHandler[commands.DeleteProductCommand]
	UploadMedia           Handler[commands.UploadMediaCommand, ports.UploadedMedia]

	// Query handlers
	GetOrderStatus    Handler[queries.GetOrderStatusQuery, queries.GetOrderStatusQueryResponse]
	GetOrders         Handler[queries.GetOrdersQuery, []queries.GetOrdersQueryResponse]
	GetQuotesByStatus Handler[queries.GetQuotesByStatusQuery, queries.GetQuotesByStatusQueryResponse]
	GetVendors        Handler[queries.GetVendorsQuery, []queries.VendorView]
	GetVendor         Handler[queries.GetVendorQuery, queries.VendorView]
	GetCompanies      Handler[queries.GetCompaniesQuery, []queries.CompanyView]
	GetCompany        Handler[queries.GetCompanyQuery, queries.CompanyView]
	GetProducts       Handler[queries.GetProductsQuery, []queries.ProductView]
	GetProduct        Handler[queries.GetProductQuery, queries.ProductView]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// kernelID converts a bound path or body identifier.
func kernelID(id servers.Id) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
