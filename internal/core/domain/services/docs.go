// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the pizzeria. It implements checkout arithmetic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - PromotionSelector: Picks and applies the best qualifying promotion
//   - PaymentCalculator: Applies promotions and the loyalty discount, and spends loyalty points
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
