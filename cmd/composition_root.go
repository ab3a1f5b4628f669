package cmd

import (
	"log/slog"

	httpin "sourcing/internal/adapters/in/http"
	"sourcing/internal/adapters/out/postgres"
	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/core/application/usecases/queries"
	"sourcing/internal/core/ports"
	"sourcing/internal/jobs"
	"sourcing/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	storage    ports.MediaStorage
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, storage ports.MediaStorage, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		storage:    storage,
		clock:      clock.NewSystem(),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) quoteUoWFactory() commands.QuoteUoWFactory {
	return FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vendorUoWFactory() commands.VendorUoWFactory {
	return FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) companyUoWFactory() commands.CompanyUoWFactory {
	return FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAdvanceProductionStepCommandHandler() commands.AdvanceProductionStepCommandHandler {
	return commands.NewAdvanceProductionStepCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAcceptQuoteCommandHandler() commands.AcceptQuoteCommandHandler {
	return commands.NewAcceptQuoteCommandHandler(c.quoteUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRejectQuoteCommandHandler() commands.RejectQuoteCommandHandler {
	return commands.NewRejectQuoteCommandHandler(c.quoteUoWFactory())
}

func (c *CompositionRoot) CreateReconcileAcceptedQuotesCommandHandler() commands.ReconcileAcceptedQuotesCommandHandler {
	return commands.NewReconcileAcceptedQuotesCommandHandler(c.quoteUoWFactory(), c.CreateAcceptQuoteCommandHandler())
}

func (c *CompositionRoot) CreateChangeVendorStatusCommandHandler() commands.ChangeVendorStatusCommandHandler {
	return commands.NewChangeVendorStatusCommandHandler(c.vendorUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateCompanyCommandHandler() commands.UpdateCompanyCommandHandler {
	return commands.NewUpdateCompanyCommandHandler(c.companyUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteCompanyCommandHandler() commands.DeleteCompanyCommandHandler {
	return commands.NewDeleteCompanyCommandHandler(c.companyUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory(), c.storage, c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory(), c.storage, c.clock, c.logger)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory(), c.storage, c.logger)
}

func (c *CompositionRoot) CreateUploadMediaCommandHandler() commands.UploadMediaCommandHandler {
	return commands.NewUploadMediaCommandHandler(c.storage)
}

// HTTPHandlers collects every use case the HTTP API exposes.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		AdvanceProductionStep: c.CreateAdvanceProductionStepCommandHandler(),
		AcceptQuote:           c.CreateAcceptQuoteCommandHandler(),
		RejectQuote:           c.CreateRejectQuoteCommandHandler(),
		ChangeVendorStatus:    c.CreateChangeVendorStatusCommandHandler(),
		UpdateCompany:         c.CreateUpdateCompanyCommandHandler(),
		DeleteCompany:         c.CreateDeleteCompanyCommandHandler(),
		CreateProduct:         c.CreateCreateProductCommandHandler(),
		UpdateProduct:         c.CreateUpdateProductCommandHandler(),
		DeleteProduct:         c.CreateDeleteProductCommandHandler(),
		UploadMedia:           c.CreateUploadMediaCommandHandler(),

		GetOrderStatus:    queries.NewGetOrderStatusQueryHandler(c.gormDB),
		GetOrders:         queries.NewGetOrdersQueryHandler(c.gormDB),
		GetQuotesByStatus: queries.NewGetQuotesByStatusQueryHandler(c.gormDB),
		GetVendors:        queries.NewGetVendorsQueryHandler(c.gormDB),
		GetVendor:         queries.NewGetVendorQueryHandler(c.gormDB),
		GetCompanies:      queries.NewGetCompaniesQueryHandler(c.gormDB),
		GetCompany:        queries.NewGetCompanyQueryHandler(c.gormDB),
		GetProducts:       queries.NewGetProductsQueryHandler(c.gormDB),
		GetProduct:        queries.NewGetProductQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileAcceptedQuotesCommandHandler(),
		jobs.Config{ReconcileSchedule: c.config.ReconcileSchedule},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncCompanyUoWFactory func() commands.CompanyUoW

func (f FuncCompanyUoWFactory) Create() commands.CompanyUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
