package api

import (
	"github.com/google/uuid"

	"github.com/hackgods/clinic-scheduling/internal/billing"
	"github.com/hackgods/clinic-scheduling/internal/clinic"
)

// Dates travel as M/D/YYYY strings, timeslots as 1-based indices.

type PatientFields struct {
	Date      string `json:"date"`
	Timeslot  int    `json:"timeslot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
}

type OfficeBookingRequest struct {
	PatientFields
	NPI string `json:"npi"`
}

type ImagingBookingRequest struct {
	PatientFields
	Room string `json:"room"`
}

type CancelRequest struct {
	PatientFields
	NPI string `json:"npi,omitempty"`
}

type RescheduleRequest struct {
	PatientFields
	NewTimeslot int `json:"new_timeslot"`
}

type ProfileResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
}

type ProviderResponse struct {
	Kind      string          `json:"kind"`
	Profile   ProfileResponse `json:"profile"`
	Location  string          `json:"location"`
	County    string          `json:"county"`
	Zip       string          `json:"zip"`
	Specialty string          `json:"specialty,omitempty"`
	NPI       string          `json:"npi,omitempty"`
	Rate      int             `json:"rate"`
}

type AppointmentResponse struct {
	ID            uuid.UUID        `json:"id"`
	Kind          string           `json:"kind"`
	Date          string           `json:"date"`
	Timeslot      string           `json:"timeslot"`
	TimeslotIndex int              `json:"timeslot_index"`
	Patient       ProfileResponse  `json:"patient"`
	Provider      ProviderResponse `json:"provider"`
	Room          string           `json:"room,omitempty"`
	Summary       string           `json:"summary"`
}

type ChargeResponse struct {
	Ordinal int             `json:"ordinal"`
	Patient ProfileResponse `json:"patient"`
	Amount  int             `json:"amount"`
	Display string          `json:"display"`
}

type CreditResponse struct {
	Ordinal      int              `json:"ordinal"`
	Provider     ProviderResponse `json:"provider"`
	Appointments int              `json:"appointments"`
	Amount       int              `json:"amount"`
	Display      string           `json:"display"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toProfile(p clinic.Profile) ProfileResponse {
	return ProfileResponse{FirstName: p.FirstName, LastName: p.LastName, DOB: p.DOB.String()}
}

func toProvider(p clinic.Provider) ProviderResponse {
	resp := ProviderResponse{
		Profile:  toProfile(p.Profile()),
		Location: p.Location().Name(),
		County:   p.Location().County(),
		Zip:      p.Location().Zip(),
		Rate:     p.Rate(),
	}
	switch v := p.(type) {
	case *clinic.Doctor:
		resp.Kind = "doctor"
		resp.Specialty = v.Specialty().String()
		resp.NPI = v.NPI()
	case *clinic.Technician:
		resp.Kind = "technician"
	}
	return resp
}

func toAppointment(a clinic.Appointment, slots clinic.TimeslotTable) AppointmentResponse {
	resp := AppointmentResponse{
		ID:            a.ID,
		Kind:          string(a.Kind),
		Date:          a.Date.String(),
		Timeslot:      a.Timeslot.String(),
		TimeslotIndex: slots.Index(a.Timeslot),
		Patient:       toProfile(a.Patient),
		Provider:      toProvider(a.Provider),
		Summary:       a.String(),
	}
	if a.IsImaging() {
		resp.Room = a.Room.Token()
	}
	return resp
}

func toCharge(c billing.Charge) ChargeResponse {
	return ChargeResponse{Ordinal: c.Ordinal, Patient: toProfile(c.Patient), Amount: c.Amount, Display: c.String()}
}

func toCredit(c billing.Credit) CreditResponse {
	return CreditResponse{
		Ordinal:      c.Ordinal,
		Provider:     toProvider(c.Provider),
		Appointments: c.Appointments,
		Amount:       c.Amount,
		Display:      c.String(),
	}
}
