package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hackgods/clinic-scheduling/internal/appointment"
	"github.com/hackgods/clinic-scheduling/internal/clinic"
	"github.com/hackgods/clinic-scheduling/internal/ordering"
)

type handlers struct {
	svc *appointment.Service
}

// parse reads the shared request fields. It writes the error response itself.
func (f PatientFields) parse(w http.ResponseWriter) (clinic.Date, clinic.Profile, bool) {
	date, err := clinic.ParseDate(f.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date", "date: "+err.Error())
		return clinic.Date{}, clinic.Profile{}, false
	}
	dob, err := clinic.ParseDate(f.DOB)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_dob", "dob: "+err.Error())
		return clinic.Date{}, clinic.Profile{}, false
	}
	if f.FirstName == "" || f.LastName == "" {
		writeError(w, http.StatusBadRequest, "invalid_patient", "first_name and last_name are required")
		return clinic.Date{}, clinic.Profile{}, false
	}
	return date, clinic.NewProfile(f.FirstName, f.LastName, dob), true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return false
	}
	return true
}

func (h *handlers) bookOffice(w http.ResponseWriter, r *http.Request) {
	var req OfficeBookingRequest
	if !decode(w, r, &req) {
		return
	}
	date, patient, ok := req.parse(w)
	if !ok {
		return
	}

	appt, err := h.svc.BookOffice(r.Context(), appointment.OfficeRequest{
		Date: date, Slot: req.Timeslot, Patient: patient, NPI: req.NPI,
	})
	if err != nil {
		handleEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAppointment(appt, h.svc.Timeslots()))
}

func (h *handlers) bookImaging(w http.ResponseWriter, r *http.Request) {
	var req ImagingBookingRequest
	if !decode(w, r, &req) {
		return
	}
	date, patient, ok := req.parse(w)
	if !ok {
		return
	}
	room, err := clinic.ParseRadiology(req.Room)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_room", err.Error())
		return
	}

	appt, err := h.svc.BookImaging(r.Context(), appointment.ImagingRequest{
		Date: date, Slot: req.Timeslot, Patient: patient, Room: room,
	})
	if err != nil {
		handleEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAppointment(appt, h.svc.Timeslots()))
}

func (h *handlers) cancel(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if !decode(w, r, &req) {
		return
	}
	date, patient, ok := req.parse(w)
	if !ok {
		return
	}

	appt, err := h.svc.Cancel(r.Context(), appointment.CancelRequest{
		Date: date, Slot: req.Timeslot, Patient: patient, NPI: req.NPI,
	})
	if err != nil {
		handleEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAppointment(appt, h.svc.Timeslots()))
}

func (h *handlers) reschedule(w http.ResponseWriter, r *http.Request) {
	var req RescheduleRequest
	if !decode(w, r, &req) {
		return
	}
	date, patient, ok := req.parse(w)
	if !ok {
		return
	}

	appt, err := h.svc.Reschedule(r.Context(), appointment.RescheduleRequest{
		Date: date, Slot: req.Timeslot, Patient: patient, NewSlot: req.NewTimeslot,
	})
	if err != nil {
		handleEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAppointment(appt, h.svc.Timeslots()))
}

func (h *handlers) listAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode, err := ordering.ParseMode(q.Get("order"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order", err.Error())
		return
	}

	var kind clinic.AppointmentKind
	switch k := clinic.AppointmentKind(q.Get("kind")); k {
	case "", clinic.KindOffice, clinic.KindImaging:
		kind = k
	default:
		writeError(w, http.StatusBadRequest, "invalid_kind", "kind must be office or imaging")
		return
	}

	list := h.svc.Appointments(mode, kind)
	resp := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toAppointment(a, h.svc.Timeslots()))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) listProviders(w http.ResponseWriter, r *http.Request) {
	providers := h.svc.Providers()
	resp := make([]ProviderResponse, 0, len(providers))
	for _, p := range providers {
		resp = append(resp, toProvider(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) rotation(w http.ResponseWriter, r *http.Request) {
	techs := h.svc.Rotation()
	resp := make([]ProviderResponse, 0, len(techs))
	for _, t := range techs {
		resp = append(resp, toProvider(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) creditReport(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.CreditReport()
	resp := make([]CreditResponse, 0, len(rows))
	for _, c := range rows {
		resp = append(resp, toCredit(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// billingStatement is a POST because it clears the schedule.
func (h *handlers) billingStatement(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.BillingStatement(r.Context())
	resp := make([]ChargeResponse, 0, len(rows))
	for _, c := range rows {
		resp = append(resp, toCharge(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleEngineError(w http.ResponseWriter, err error) {
	switch {
	case appointment.IsInput(err):
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, appointment.ErrProviderNotFound):
		writeError(w, http.StatusNotFound, "provider_not_found", err.Error())
	case errors.Is(err, appointment.ErrNotFound):
		writeError(w, http.StatusNotFound, "appointment_not_found", err.Error())
	case errors.Is(err, appointment.ErrNoTechnician):
		writeError(w, http.StatusConflict, "no_technician_available", err.Error())
	case errors.Is(err, appointment.ErrPatientConflict):
		writeError(w, http.StatusConflict, "patient_conflict", err.Error())
	case errors.Is(err, appointment.ErrRoomUnavailable):
		writeError(w, http.StatusConflict, "room_unavailable", err.Error())
	case errors.Is(err, appointment.ErrNotAvailable):
		writeError(w, http.StatusConflict, "provider_not_available", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}
