// Package order provides the Order aggregate of the time tracker: an order, its
// pauses, the derived lifecycle Status and the events published after each
// transition.
//
// The package includes:
//   - Order: the aggregate root owning identity, timestamps, totals and pauses
//   - Pause: an interval during which active time does not accrue
//   - Status: Created, Running, Paused or Finished, derived from the order state
//   - Event: OrderCreated / OrderUpdated carrying the committed order
//
// Key business rules:
//   - Names are required and at most 100 characters; pause reasons at most 255
//   - An order starts once and finishes once, and only after it was started
//   - At most one pause is open per order
//   - Resuming closes the open pause and adds its whole-second duration to the
//     order's pause total in the same step
//   - Finishing fixes the active total as elapsed whole seconds minus pause total
//
// All lifecycle failures wrap errs.ErrInvalidTransition together with a specific
// sentinel (ErrAlreadyStarted, ErrNotStarted, ErrAlreadyFinished,
// ErrActivePauseExists, ErrNoActivePause).
package order
