package kernel

import (
	"strconv"

	"ordertracker/internal/pkg/errs"
)

// ErrIDIsNotAssigned indicates that an ID has not been assigned by the store yet.
// This error is returned when validating a zero-value ID.
var ErrIDIsNotAssigned = errs.NewValueIsRequiredError("ID must be assigned by the store via NewID or IDFromString")

// ID is a value object for store-assigned identifiers of orders and pauses.
// Identifiers are positive integers handed out by the database sequence when a
// record is first inserted; the zero value means "not persisted yet".
//
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id, err := kernel.IDFromString(ctx.Param("id"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id.Int64())
type ID struct {
	value int64
}

// NewID wraps a positive integer identifier.
// Returns a ValueIsOutOfRangeError for zero or negative values.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsOutOfRangeError("id", value, 1, "max int64")
	}
	return ID{value: value}, nil
}

// IDFromString parses the decimal representation used in URLs.
//
// Example:
//
//	id, err := kernel.IDFromString("42")
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Int64 returns the raw identifier, 0 for an unassigned ID.
func (i ID) Int64() int64 {
	return i.value
}

// String returns the decimal representation of the identifier.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual compares two identifiers by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// IsZero reports whether the ID has not been assigned yet.
func (i ID) IsZero() bool {
	return i.value == 0
}

// Validate returns ErrIDIsNotAssigned for the zero value.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotAssigned
	}
	return nil
}
