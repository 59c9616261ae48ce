// Package order contains the order aggregate and its supporting value
// objects: the line-item pricing variant, the line item itself, and the
// processing-status state machine.
//
// An Order owns its line items and its total. The total is always the sum
// of the line-item subtotals and is recomputed from the pricing inputs on
// every mutation and on every load from persistence; a stored total is
// never trusted.
//
// The status machine models the physical laundry pipeline
// (new → processing → washing → drying → folding → ready → delivered,
// with cancellation from any non-terminal state) and rejects skipped,
// reversed, and post-terminal transitions.
package order
