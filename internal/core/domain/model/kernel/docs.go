// Package kernel provides the value objects shared by the pizzeria domain model.
//
// The package includes:
//   - ID and Sequence: monotonically assigned identifiers for accounts, products and orders
//   - Money: non-negative cent amounts used for prices, discounts and charges
//   - ContactNumber: the 10-digit key accounts are registered and looked up by
//   - UUID: opaque references for payment receipts and the running session
//
// All value objects are immutable and safe to share between goroutines.
package kernel
