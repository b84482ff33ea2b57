package order

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

// MaxReasonLength bounds Pause.Reason in characters.
const MaxReasonLength = 255

var (
	ErrPauseIsNotConstructed = errors.New("Pause must be created via Order.Pause or RestorePause")
	ErrPauseIDAlreadySet     = errors.New("pause ID is already assigned")
)

// Pause is an interval during which the owning order does not accrue active time.
// An open pause has no end; closing it fixes DurationSeconds once.
type Pause struct {
	id              kernel.ID
	orderID         kernel.ID
	reason          string
	startedAt       time.Time
	endedAt         *time.Time
	durationSeconds *int64

	guard guard.ConstructorGuard
}

// PauseSnapshot carries persisted pause state into RestorePause.
type PauseSnapshot struct {
	ID              kernel.ID
	OrderID         kernel.ID
	Reason          string
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds *int64
}

func newPause(orderID kernel.ID, reason string, now time.Time) (*Pause, error) {
	if err := errors.Join(orderID.Validate(), ValidateReason(reason)); err != nil {
		return nil, err
	}

	return &Pause{
		orderID:   orderID,
		reason:    reason,
		startedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestorePause rebuilds a pause loaded from storage.
func RestorePause(s PauseSnapshot) (*Pause, error) {
	if err := errors.Join(s.ID.Validate(), s.OrderID.Validate(), ValidateReason(s.Reason)); err != nil {
		return nil, err
	}

	if (s.EndedAt == nil) != (s.DurationSeconds == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"pause", errors.New("endedAt and durationSeconds must be set together"))
	}

	return &Pause{
		id:              s.ID,
		orderID:         s.OrderID,
		reason:          s.Reason,
		startedAt:       s.StartedAt,
		endedAt:         s.EndedAt,
		durationSeconds: s.DurationSeconds,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// ValidateReason enforces a non-blank reason of at most MaxReasonLength characters.
func ValidateReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if n := utf8.RuneCountInString(reason); n > MaxReasonLength {
		return errs.NewValueIsOutOfRangeError("reason length", n, 1, MaxReasonLength)
	}
	return nil
}

// Validate ensures the pause was built by a constructor.
func (p *Pause) Validate() error {
	if p == nil {
		return ErrPauseIsNotConstructed
	}
	return p.guard.Validate(ErrPauseIsNotConstructed)
}

// AssignID records the identifier handed out by the store on insert.
func (p *Pause) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !p.id.IsZero() {
		return ErrPauseIDAlreadySet
	}
	p.id = id
	return nil
}

// ID returns the store-assigned identifier, zero before the first save.
func (p *Pause) ID() kernel.ID {
	return p.id
}

// OrderID returns the owning order's identifier.
func (p *Pause) OrderID() kernel.ID {
	return p.orderID
}

// Reason returns why the order was paused.
func (p *Pause) Reason() string {
	return p.reason
}

// StartedAt returns when the pause began.
func (p *Pause) StartedAt() time.Time {
	return p.startedAt
}

// EndedAt returns when the pause was resumed, nil while it is open.
func (p *Pause) EndedAt() *time.Time {
	return p.endedAt
}

// DurationSeconds returns the closed pause length, nil while it is open.
func (p *Pause) DurationSeconds() *int64 {
	return p.durationSeconds
}

// IsActive reports whether the pause is still open.
func (p *Pause) IsActive() bool {
	return p.endedAt == nil
}

// end closes the pause at now and returns its whole-second duration.
func (p *Pause) end(now time.Time) (int64, error) {
	if !p.IsActive() {
		return 0, errs.NewInvalidTransitionErrorWithCause("resume", "closed pause", ErrNoActivePause)
	}
	// A wall clock stepped back behind the pause start closes it at its start.
	if now.Before(p.startedAt) {
		now = p.startedAt
	}

	duration := kernel.WholeSeconds(p.startedAt, now)
	p.endedAt = &now
	p.durationSeconds = &duration
	return duration, nil
}
