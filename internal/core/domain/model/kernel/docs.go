// Package kernel provides the value objects shared by every aggregate of the
// sourcing domain.
//
// The package includes:
//   - UUID: identifiers for orders, quotes, vendors, companies and products
//   - Money: non-negative decimal amounts for prices
//
// Both types reject their zero value through Validate, so aggregates can
// detect values that bypassed the constructors.
package kernel
