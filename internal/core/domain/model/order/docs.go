// Package order provides domain entities and business logic for purchase order
// management in the marketplace. It implements the Order aggregate root with
// frozen pricing, lifecycle management and the dual-confirmation protocol.
//
// The package includes:
//   - Order: the aggregate root owning identity, line items and lifecycle state
//   - Item: an immutable order line with the price frozen at creation
//   - Status: a state machine enforcing Pending -> Delivering -> Delivered
//   - Outcome: the tagged result of a transition attempt
//
// Key business rules:
//   - An order is created atomically with its full set of items and its total
//     is frozen from those items, never recomputed from the live catalog
//   - A driver claims a Pending order exactly once; late claims are no-ops
//   - An order is Delivered if and only if both the claiming driver and the
//     owning customer confirmed the delivery
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
