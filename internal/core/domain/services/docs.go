// Package services provides domain services that orchestrate business operations
// across multiple aggregates of the sourcing system.
//
// The package includes:
//   - QuoteAcceptor: accepts a quote and opens exactly one order for it
package services
