package appointment

import (
	"errors"
	"fmt"
)

// Input errors. These are always wrapped in an *InputError.
var (
	ErrInvalidDate        = errors.New("is not a valid calendar date")
	ErrDatePast           = errors.New("is today or a date before today")
	ErrDateWeekend        = errors.New("is on a Saturday/Sunday")
	ErrNotWithinSixMonths = errors.New("is not within six months from today")
	ErrBirthNotPast       = errors.New("cannot be today or a future date")
	ErrInvalidTimeslot    = errors.New("is not a valid timeslot")
	ErrInvalidRoom        = errors.New("is not a valid imaging room")
)

var (
	ErrProviderNotFound = errors.New("provider does not exist")
	ErrNotFound         = errors.New("appointment does not exist")
)

// Conflicts.
var (
	ErrNotAvailable    = errors.New("provider is not available")
	ErrNoTechnician    = errors.New("cannot find an available technician at all locations")
	ErrRoomUnavailable = errors.New("imaging room is not available")
	ErrPatientConflict = errors.New("patient has an existing appointment")
)

// InputError rejects a single request field.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %s %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func inputError(field, value string, err error) error {
	return &InputError{Field: field, Value: value, Err: err}
}

// IsConflict reports whether err rejects a request because the schedule is full.
func IsConflict(err error) bool {
	return errors.Is(err, ErrNotAvailable) ||
		errors.Is(err, ErrNoTechnician) ||
		errors.Is(err, ErrRoomUnavailable) ||
		errors.Is(err, ErrPatientConflict)
}

// IsInput reports whether err rejects a malformed or out-of-range field.
func IsInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
