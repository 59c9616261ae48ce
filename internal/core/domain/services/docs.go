// Package services provides domain services that implement business logic
// spanning multiple aggregates.
//
// The package includes:
//   - PaymentReconciler: computes how much of an order's total has been
//     satisfied by completed payments, the remaining balance, change due for
//     a submitted payment, and whether a placeholder record is needed.
package services
