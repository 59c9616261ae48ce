// Package kernel provides core domain primitives used throughout the laundry
// order model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a monetary amount in minor currency units with exact arithmetic
//   - Weight: a laundry weight with 0.1 kg granularity
//   - OrderNumber: the generated, globally unique order number
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
