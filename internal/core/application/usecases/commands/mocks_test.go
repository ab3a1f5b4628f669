package commands_test

import (
	"context"
	"time"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/core/domain/model/product"
	"sourcing/internal/core/domain/model/quote"
	"sourcing/internal/core/domain/model/vendor"
	"sourcing/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByQuote(ctx context.Context, quoteID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, quoteID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateProgress(ctx context.Context, change order.StepChange, updatedAt time.Time) error {
	args := m.Called(ctx, change, updatedAt)
	return args.Error(0)
}

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*quote.Quote)
	return q, args.Error(1)
}

func (m *MockQuoteRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*quote.Quote)
	return q, args.Error(1)
}

func (m *MockQuoteRepository) Update(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuoteRepository) ListAcceptedWithoutOrder(ctx context.Context, limit int) ([]*quote.Quote, error) {
	args := m.Called(ctx, limit)
	qs, _ := args.Get(0).([]*quote.Quote)
	return qs, args.Error(1)
}

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*vendor.Vendor)
	return v, args.Error(1)
}

func (m *MockVendorRepository) UpdateStatus(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*company.Company)
	return c, args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, code string, exclude *kernel.UUID) (bool, error) {
	args := m.Called(ctx, code, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMediaStorage struct{ mock.Mock }

func (m *MockMediaStorage) Upload(ctx context.Context, file ports.MediaFile) (ports.UploadedMedia, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(ports.UploadedMedia), args.Error(1)
}

func (m *MockMediaStorage) Destroy(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// MockUoW implements every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

func (m *MockUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

// factory hands out the given units of work in order, one per Create call.
type factory struct {
	uows []*MockUoW
	next int
}

func newFactory(uows ...*MockUoW) *factory {
	return &factory{uows: uows}
}

func (f *factory) pop() *MockUoW {
	u := f.uows[f.next]
	f.next++
	return u
}

type orderFactory struct{ *factory }

func (f orderFactory) Create() commands.OrderUoW { return f.pop() }

type quoteFactory struct{ *factory }

func (f quoteFactory) Create() commands.QuoteUoW { return f.pop() }

type vendorFactory struct{ *factory }

func (f vendorFactory) Create() commands.VendorUoW { return f.pop() }

type companyFactory struct{ *factory }

func (f companyFactory) Create() commands.CompanyUoW { return f.pop() }

type productFactory struct{ *factory }

func (f productFactory) Create() commands.ProductUoW { return f.pop() }
