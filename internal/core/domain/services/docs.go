// Package services provides domain services that operate across multiple
// domain entities of the pizzeria back office.
//
// The package includes:
//   - PaymentReconciler: derives an order's payment summary from its
//     payment attempts
//
// Domain services hold business logic that spans aggregates and does not
// naturally belong to a single aggregate root.
package services
