// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"sourcing/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for order-only operations such as
	// production step updates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// QuoteUoW manages transactions spanning a quote and its order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   q, err := uow.QuoteRepository().GetForUpdate(ctx, quoteID)
	//   existing, err := uow.OrderRepository().GetByQuote(ctx, quoteID)
	//   // ... accept and persist
	//
	//   err = uow.Commit(ctx)
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
		OrderRepoFactory
	}

	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	VendorUoW interface {
		TxManager
		VendorRepoFactory
	}

	VendorUoWFactory interface {
		Create() VendorUoW
	}

	CompanyUoW interface {
		TxManager
		CompanyRepoFactory
	}

	CompanyUoWFactory interface {
		Create() CompanyUoW
	}

	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}
)
