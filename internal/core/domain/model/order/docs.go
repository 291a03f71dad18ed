// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: The aggregate root holding the product snapshot, destination, status and review
//   - Status: The closed set of lifecycle states and the total transition function Next
//   - Fulfillment: Pickup or Delivery
//
// Key business rules:
//   - Every order starts at Received and follows Received -> Preparing -> Baking -> OutForDelivery -> Delivered
//   - Every non-terminal order advances exactly one step per tick, regardless of age or type
//   - Delivered is terminal; Next on Delivered returns Delivered
//   - A delivery address is present if and only if the order is a delivery
//   - Feedback and rating are accepted only on Delivered orders
package order
