// Package order contains the order aggregate and its production step ledger.
//
// An order is created once per accepted quote and tracks eight fixed production
// steps. The overall status is derived from the steps by DeriveStatus and only
// moves forward: completing steps advances the order from Confirmed to
// In Production and finally to Completed, while reverting a step leaves the
// overall status where it was.
package order
