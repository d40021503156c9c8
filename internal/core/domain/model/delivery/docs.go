// Package delivery contains the Delivery aggregate and its lifecycle state
// machine.
//
// The aggregate is deliberately read-side: transitions are executed by the
// persistence adapter as single conditional updates so that concurrent
// couriers racing for the same offer are serialized at the row level, and at
// most one of them wins. The domain model contributes the transition
// predicates (Status), the actor taxonomy (CanceledBy), the configurable
// lifecycle windows (Timing), and the invariants checked at construction and
// restoration time.
package delivery
