// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work and the media host.
package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command; units are never shared.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction and the repositories bound to it.
// Callers Begin, defer Rollback and Commit on success; the deferred Rollback
// then fails harmlessly and its error is dropped.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	QuoteRepository() QuoteRepository
	VendorRepository() VendorRepository
	CompanyRepository() CompanyRepository
	ProductRepository() ProductRepository
}
