package order

import (
	"fmt"

	"ordertracker/internal/pkg/errs"
)

// Status is the lifecycle state of an order, derived from its timestamps and
// pause history rather than stored.
//
// State transitions:
//
//	Created ──start──> Running ──pause──> Paused
//	                      ^                 │
//	                      └─────resume──────┘
//	Running/Paused ──finish──> Finished
//
// Pausing is also accepted before start and after finish; such an order reports
// Paused while the pause is open.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status: the order has not been started.
	Created

	// Running means the order is started, not finished and has no open pause.
	Running

	// Paused means the order has an open pause.
	Paused

	// Finished is terminal: finishedAt is set and totals are final.
	Finished
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Created:  "Created",
		Running:  "Running",
		Paused:   "Paused",
		Finished: "Finished",
	}
}

// DeriveStatus computes the status from the facts that define it.
// Finished wins over an open pause, an open pause wins over Running.
func DeriveStatus(started, finished, hasActivePause bool) Status {
	switch {
	case finished:
		return Finished
	case hasActivePause:
		return Paused
	case started:
		return Running
	default:
		return Created
	}
}

// Validate checks that the status is one of the known lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Finished {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further start or finish is possible.
func (s Status) IsTerminal() bool {
	return s == Finished
}
