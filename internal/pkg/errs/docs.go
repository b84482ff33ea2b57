// Package errs holds the typed errors shared by the order domain, the use cases
// and the adapters.
//
// Every type unwraps to one sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrInvalidTransition), and the
// HTTP adapter picks response codes with errors.Is against those sentinels.
// InvalidTransitionError additionally unwraps to its cause, so a caller can tell
// "already started" from "no active pause" without parsing messages.
package errs
