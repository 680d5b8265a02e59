// Package order contains the delivery order aggregate and its value objects:
// the status state machine, pickup/delivery addresses, order items, and the
// computed pricing. The aggregate enforces all lifecycle rules: orders start
// in CREATED after a successful fare calculation, can only be patched while
// CREATED, cancelled from CREATED or PICKED_UP, and terminal states admit no
// further transitions.
package order
