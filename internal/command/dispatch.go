package command

import (
	"context"
	"fmt"

	"github.com/hackgods/clinic-scheduling/internal/appointment"
	"github.com/hackgods/clinic-scheduling/internal/clinic"
	"github.com/hackgods/clinic-scheduling/internal/ordering"
)

const (
	msgInvalid    = "Invalid command!"
	msgEmpty      = "The schedule calendar is empty."
	msgEndOfList  = "** end of list **"
	msgTerminated = "Clinic Manager terminated."
)

type listing struct {
	mode   ordering.Mode
	kind   clinic.AppointmentKind
	header string
}

var listings = map[string]listing{
	"PA": {ordering.Chronological, "", "** List of appointments, ordered by date/time/provider."},
	"PP": {ordering.ByPatient, "", "** List of appointments, ordered by patient/date/time."},
	"PL": {ordering.ByLocation, "", "** List of appointments, ordered by county/date/time."},
	"PO": {ordering.ByLocation, clinic.KindOffice, "** List of office appointments ordered by county/date/time."},
	"PI": {ordering.ByLocation, clinic.KindImaging, "** List of radiology appointments ordered by county/date/time."},
}

// Dispatcher runs console commands against the engine. Output is returned as
// lines so the caller owns all I/O.
type Dispatcher struct {
	svc *appointment.Service
}

func NewDispatcher(svc *appointment.Service) *Dispatcher {
	return &Dispatcher{svc: svc}
}

// Execute runs one line. quit is true after Q.
func (d *Dispatcher) Execute(ctx context.Context, line string) (out []string, quit bool) {
	cmd := Tokenize(line)
	switch cmd.Name {
	case "":
		return nil, false
	case "Q":
		return []string{msgTerminated}, true
	case "D":
		return run(cmd.Office, func(req appointment.OfficeRequest) (clinic.Appointment, error) {
			return d.svc.BookOffice(ctx, req)
		}, "booked."), false
	case "T":
		return run(cmd.Imaging, func(req appointment.ImagingRequest) (clinic.Appointment, error) {
			return d.svc.BookImaging(ctx, req)
		}, "booked."), false
	case "C":
		return run(cmd.Cancel, func(req appointment.CancelRequest) (clinic.Appointment, error) {
			return d.svc.Cancel(ctx, req)
		}, "- appointment has been canceled."), false
	case "R":
		return run(cmd.Reschedule, func(req appointment.RescheduleRequest) (clinic.Appointment, error) {
			return d.svc.Reschedule(ctx, req)
		}, "rescheduled."), false
	case "PS":
		return Statement(d.svc.BillingStatement(ctx)), false
	case "PC":
		return CreditReport(d.svc.CreditReport()), false
	}
	if l, ok := listings[cmd.Name]; ok {
		return Appointments(l.header, d.svc.Appointments(l.mode, l.kind)), false
	}
	return []string{msgInvalid}, false
}

// run parses, executes and reports one appointment command.
func run[R any](parse func() (R, error), exec func(R) (clinic.Appointment, error), suffix string) []string {
	req, err := parse()
	if err != nil {
		return []string{err.Error()}
	}
	appt, err := exec(req)
	if err != nil {
		return []string{err.Error()}
	}
	return []string{fmt.Sprintf("%s %s", appt.String(), suffix)}
}
