package clinic

import (
	"fmt"

	"github.com/google/uuid"
)

type AppointmentKind string

const (
	KindOffice  AppointmentKind = "office"
	KindImaging AppointmentKind = "imaging"
)

// Appointment books a patient with a provider at a date and timeslot.
// Imaging appointments also occupy a radiology room at the provider's location.
// ID is a handle for events and the API; it takes no part in equality or ordering.
type Appointment struct {
	ID       uuid.UUID
	Date     Date
	Timeslot Timeslot
	Patient  Profile
	Provider Provider
	Kind     AppointmentKind
	Room     Radiology
}

func NewOffice(date Date, slot Timeslot, patient Profile, doctor *Doctor) *Appointment {
	return &Appointment{
		ID:       uuid.New(),
		Date:     date,
		Timeslot: slot,
		Patient:  patient,
		Provider: doctor,
		Kind:     KindOffice,
	}
}

func NewImaging(date Date, slot Timeslot, patient Profile, tech *Technician, room Radiology) *Appointment {
	return &Appointment{
		ID:       uuid.New(),
		Date:     date,
		Timeslot: slot,
		Patient:  patient,
		Provider: tech,
		Kind:     KindImaging,
		Room:     room,
	}
}

func (a *Appointment) IsImaging() bool {
	return a.Kind == KindImaging
}

// Location is the provider's site.
func (a *Appointment) Location() Location {
	return a.Provider.Location()
}

// Equal compares date, timeslot, patient, provider, kind and, for imaging, room.
func (a *Appointment) Equal(o *Appointment) bool {
	if a == nil || o == nil {
		return a == o
	}
	if !a.Date.Equal(o.Date) || a.Timeslot != o.Timeslot || !a.Patient.Equal(o.Patient) {
		return false
	}
	if a.Kind != o.Kind || !a.Provider.Equal(o.Provider) {
		return false
	}
	return a.Kind != KindImaging || a.Room == o.Room
}

// Compare is the natural order: date, timeslot, provider profile, patient profile.
func (a *Appointment) Compare(o *Appointment) int {
	if c := a.Date.Compare(o.Date); c != 0 {
		return c
	}
	if c := a.Timeslot.Compare(o.Timeslot); c != 0 {
		return c
	}
	if c := a.Provider.Profile().Compare(o.Provider.Profile()); c != 0 {
		return c
	}
	return a.Patient.Compare(o.Patient)
}

// Occupies reports whether the appointment holds provider p at date and slot.
func (a *Appointment) Occupies(p Provider, date Date, slot Timeslot) bool {
	return a.Provider.Equal(p) && a.Date.Equal(date) && a.Timeslot == slot
}

// OccupiesRoom reports whether the appointment holds room at loc, date and slot.
func (a *Appointment) OccupiesRoom(loc Location, date Date, slot Timeslot, room Radiology) bool {
	return a.IsImaging() && a.Room == room && a.Location() == loc &&
		a.Date.Equal(date) && a.Timeslot == slot
}

func (a *Appointment) String() string {
	s := fmt.Sprintf("%s %s %s %s", a.Date, a.Timeslot, a.Patient, a.Provider)
	if a.IsImaging() {
		s += fmt.Sprintf("[%s]", a.Room)
	}
	return s
}
