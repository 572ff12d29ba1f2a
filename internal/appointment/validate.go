package appointment

import (
	"strconv"

	"github.com/hackgods/clinic-scheduling/internal/clinic"
)

const bookingWindowMonths = 6

// checkDate applies the booking calendar rules, in order: calendar validity,
// not in the past, weekday, and strictly inside the six month window.
func (s *Service) checkDate(d clinic.Date) error {
	today := s.now()
	switch {
	case !d.IsValid():
		return inputError("appointment date", d.String(), ErrInvalidDate)
	case d.Before(today):
		return inputError("appointment date", d.String(), ErrDatePast)
	case d.IsWeekend():
		return inputError("appointment date", d.String(), ErrDateWeekend)
	case !d.After(today) || !d.Before(today.AddMonths(bookingWindowMonths)):
		return inputError("appointment date", d.String(), ErrNotWithinSixMonths)
	}
	return nil
}

func (s *Service) checkBirth(dob clinic.Date) error {
	if !dob.IsValid() {
		return inputError("patient dob", dob.String(), ErrInvalidDate)
	}
	if !dob.Before(s.now()) {
		return inputError("patient dob", dob.String(), ErrBirthNotPast)
	}
	return nil
}

func (s *Service) resolveSlot(n int) (clinic.Timeslot, error) {
	slot, ok := s.slots.Slot(n)
	if !ok {
		return clinic.Timeslot{}, inputError("timeslot", strconv.Itoa(n), ErrInvalidTimeslot)
	}
	return slot, nil
}

// checkVisit validates the fields shared by every request.
func (s *Service) checkVisit(date clinic.Date, patient clinic.Profile, slot int) (clinic.Timeslot, error) {
	if err := s.checkDate(date); err != nil {
		return clinic.Timeslot{}, err
	}
	if err := s.checkBirth(patient.DOB); err != nil {
		return clinic.Timeslot{}, err
	}
	return s.resolveSlot(slot)
}
