package order

import (
	"errors"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/errs"
)

// MaxNameLength bounds Order.Name in characters.
const MaxNameLength = 100

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrOrderIDAlreadySet     = errors.New("order ID is already assigned")

	ErrAlreadyStarted    = errors.New("order has already been started")
	ErrNotStarted        = errors.New("order has not been started")
	ErrAlreadyFinished   = errors.New("order has already been finished")
	ErrActivePauseExists = errors.New("an active pause already exists for this order")
	ErrNoActivePause     = errors.New("no active pause for this order")
)

// Order is the aggregate root of the time tracker: a unit of work with a timed
// lifecycle and the history of its pauses.
//
// Order follows these invariants:
//   - At most one pause is open at any time
//   - startedAt is set at most once and never cleared
//   - finishedAt is set at most once, only after startedAt, and never cleared
//   - totalPauseSeconds grows only when a pause is closed, by that pause's duration
//   - totalActiveSeconds is computed once, at finish
//
// The aggregate is pure decision logic. Callers supply the current time and
// persist the result; the order is the sole owner of its pauses.
type Order struct {
	id                 kernel.ID
	name               string
	description        string
	startedAt          *time.Time
	finishedAt         *time.Time
	totalActiveSeconds int64
	totalPauseSeconds  int64
	createdAt          time.Time
	updatedAt          time.Time

	// pauses in creation order
	pauses []*Pause

	isConstructed bool
}

// Snapshot carries persisted order state into RestoreOrder.
type Snapshot struct {
	ID                 kernel.ID
	Name               string
	Description        string
	StartedAt          *time.Time
	FinishedAt         *time.Time
	TotalActiveSeconds int64
	TotalPauseSeconds  int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Pauses             []*Pause
}

// NewOrder creates an order in Created status with zero totals.
//
// Example:
//
//	o, err := order.NewOrder("Batch 42", "night shift", clock.Now())
//	if err != nil {
//	    // name missing or longer than MaxNameLength
//	}
func NewOrder(name, description string, now time.Time) (*Order, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	return &Order{
		name:          name,
		description:   description,
		createdAt:     now,
		updatedAt:     now,
		pauses:        make([]*Pause, 0),
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order loaded from storage, re-checking the invariants
// that the store itself does not enforce.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(s.ID.Validate(), ValidateName(s.Name)); err != nil {
		return nil, err
	}

	if s.FinishedAt != nil && s.StartedAt == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order", ErrNotStarted)
	}

	active := 0
	for _, p := range s.Pauses {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.OrderID().IsEqual(s.ID) {
			return nil, errs.NewValueIsInvalidError("pause belongs to another order")
		}
		if p.IsActive() {
			active++
		}
	}
	if active > 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order", ErrActivePauseExists)
	}

	pauses := make([]*Pause, len(s.Pauses))
	copy(pauses, s.Pauses)

	return &Order{
		id:                 s.ID,
		name:               s.Name,
		description:        s.Description,
		startedAt:          s.StartedAt,
		finishedAt:         s.FinishedAt,
		totalActiveSeconds: s.TotalActiveSeconds,
		totalPauseSeconds:  s.TotalPauseSeconds,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		pauses:             pauses,
		isConstructed:      true,
	}, nil
}

// ValidateName enforces a non-blank name of at most MaxNameLength characters.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// AssignID records the identifier handed out by the store on insert.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrOrderIDAlreadySet
	}
	o.id = id
	return nil
}

// ID returns the store-assigned identifier, zero before the first save.
func (o *Order) ID() kernel.ID {
	return o.id
}

// Name returns the order name.
func (o *Order) Name() string {
	return o.name
}

// Description returns the optional free text, empty when absent.
func (o *Order) Description() string {
	return o.description
}

// StartedAt returns when the order was started, nil before start.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// FinishedAt returns when the order was finished, nil before finish.
func (o *Order) FinishedAt() *time.Time {
	return o.finishedAt
}

// TotalActiveSeconds returns the net productive time fixed at finish.
// It is zero before finish and may be negative when pause time exceeded the
// elapsed wall time.
func (o *Order) TotalActiveSeconds() int64 {
	return o.totalActiveSeconds
}

// TotalPauseSeconds returns the sum of all closed pause durations.
func (o *Order) TotalPauseSeconds() int64 {
	return o.totalPauseSeconds
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Pauses returns the pause history in creation order.
func (o *Order) Pauses() []*Pause {
	return slices.Clone(o.pauses)
}

// ActivePause returns the open pause, or nil.
func (o *Order) ActivePause() *Pause {
	for _, p := range o.pauses {
		if p.IsActive() {
			return p
		}
	}
	return nil
}

// Status derives the lifecycle state.
func (o *Order) Status() Status {
	return DeriveStatus(o.startedAt != nil, o.finishedAt != nil, o.ActivePause() != nil)
}

// Start records now as the start time.
//
// Fails with ErrAlreadyStarted (an InvalidTransition) if the order was started before.
func (o *Order) Start(now time.Time) error {
	if o.startedAt != nil {
		return errs.NewInvalidTransitionErrorWithCause("start", o.Status().String(), ErrAlreadyStarted)
	}

	o.startedAt = &now
	o.updatedAt = now
	return nil
}

// Pause opens a new pause at now and returns it.
//
// The order does not need to be running: pausing before start or after finish
// is accepted. Only one pause may be open at a time; that conflict is reported
// ahead of an invalid reason.
func (o *Order) Pause(reason string, now time.Time) (*Pause, error) {
	if o.ActivePause() != nil {
		return nil, errs.NewInvalidTransitionErrorWithCause("pause", o.Status().String(), ErrActivePauseExists)
	}

	if err := ValidateReason(reason); err != nil {
		return nil, err
	}

	p, err := newPause(o.id, reason, now)
	if err != nil {
		return nil, err
	}

	o.pauses = append(o.pauses, p)
	o.updatedAt = now
	return p, nil
}

// Resume closes the open pause at now, adds its duration to the pause total
// and returns it. Closing the pause and accumulating the total happen together.
func (o *Order) Resume(now time.Time) (*Pause, error) {
	active := o.ActivePause()
	if active == nil {
		return nil, errs.NewInvalidTransitionErrorWithCause("resume", o.Status().String(), ErrNoActivePause)
	}

	duration, err := active.end(now)
	if err != nil {
		return nil, err
	}

	o.totalPauseSeconds += duration
	o.updatedAt = now
	return active, nil
}

// Finish records now as the finish time and fixes the active total as elapsed
// whole seconds minus the pause total at this moment. An open pause is left
// open and not counted; the result is not clamped at zero.
func (o *Order) Finish(now time.Time) error {
	if o.startedAt == nil {
		return errs.NewInvalidTransitionErrorWithCause("finish", o.Status().String(), ErrNotStarted)
	}
	if o.finishedAt != nil {
		return errs.NewInvalidTransitionErrorWithCause("finish", o.Status().String(), ErrAlreadyFinished)
	}

	o.finishedAt = &now
	o.totalActiveSeconds = kernel.WholeSeconds(*o.startedAt, now) - o.totalPauseSeconds
	o.updatedAt = now
	return nil
}
