package appointment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hackgods/clinic-scheduling/internal/billing"
	"github.com/hackgods/clinic-scheduling/internal/clinic"
	"github.com/hackgods/clinic-scheduling/internal/collection"
	"github.com/hackgods/clinic-scheduling/internal/config"
	"github.com/hackgods/clinic-scheduling/internal/directory"
	"github.com/hackgods/clinic-scheduling/internal/ordering"
)

type OfficeRequest struct {
	Date    clinic.Date
	Slot    int
	Patient clinic.Profile
	NPI     string
}

type ImagingRequest struct {
	Date    clinic.Date
	Slot    int
	Patient clinic.Profile
	Room    clinic.Radiology
}

// CancelRequest matches any provider when NPI is empty.
type CancelRequest struct {
	Date    clinic.Date
	Slot    int
	Patient clinic.Profile
	NPI     string
}

type RescheduleRequest struct {
	Date    clinic.Date
	Slot    int
	Patient clinic.Profile
	NewSlot int
}

type Option func(*Service)

// WithClock replaces the source of today's date.
func WithClock(now func() clinic.Date) Option {
	return func(s *Service) { s.now = now }
}

// Service is the scheduling engine. All state is guarded by one mutex; a
// booking attempt, including the technician rotation scan, is a single
// critical section.
type Service struct {
	mu     sync.Mutex
	dir    *directory.Directory
	active *collection.List[*clinic.Appointment]
	ring   *collection.Ring[*clinic.Technician]
	record *clinic.MedicalRecord
	slots  clinic.TimeslotTable
	now    func() clinic.Date
	events EventSink
	logger *zap.Logger

	eventTimeout time.Duration
}

func NewService(dir *directory.Directory, events EventSink, cfg config.Config, logger *zap.Logger, opts ...Option) *Service {
	if events == nil {
		events = NopSink{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	slots := cfg.Timeslots
	if slots.Len() == 0 {
		slots = clinic.StandardTable
	}
	timeout := cfg.EventTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	ring := collection.NewRing(func(a, b *clinic.Technician) bool { return a.Equal(b) })
	for _, tech := range dir.Technicians() {
		ring.Add(tech)
	}

	s := &Service{
		dir:          dir,
		active:       collection.NewList(func(a, b *clinic.Appointment) bool { return a.Equal(b) }),
		ring:         ring,
		record:       clinic.NewMedicalRecord(),
		slots:        slots,
		now:          clinic.Today,
		events:       events,
		logger:       logger,
		eventTimeout: timeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Timeslots is the table request slot indices resolve against.
func (s *Service) Timeslots() clinic.TimeslotTable {
	return s.slots
}

// BookOffice books a doctor by NPI.
func (s *Service) BookOffice(ctx context.Context, req OfficeRequest) (clinic.Appointment, error) {
	s.mu.Lock()
	appt, err := s.bookOffice(req)
	s.mu.Unlock()

	if err != nil {
		s.logger.Info("office booking rejected",
			zap.String("op", "book_office"),
			zap.Stringer("date", req.Date),
			zap.Int("timeslot", req.Slot),
			zap.String("npi", req.NPI),
			zap.Error(err),
		)
		return clinic.Appointment{}, err
	}

	s.booked(ctx, appt)
	return appt, nil
}

func (s *Service) bookOffice(req OfficeRequest) (clinic.Appointment, error) {
	slot, err := s.checkVisit(req.Date, req.Patient, req.Slot)
	if err != nil {
		return clinic.Appointment{}, err
	}

	doc := s.dir.FindDoctor(req.NPI)
	if doc == nil {
		return clinic.Appointment{}, fmt.Errorf("%w: npi %s", ErrProviderNotFound, req.NPI)
	}
	if !s.isAvailable(doc, req.Date, slot) {
		return clinic.Appointment{}, fmt.Errorf("%w: %s on %s at %s", ErrNotAvailable, doc, req.Date, slot)
	}

	appt := clinic.NewOffice(req.Date, slot, req.Patient, doc)
	s.commit(appt)
	return *appt, nil
}

// BookImaging assigns the first technician, starting at the rotation head,
// who is free at the slot and whose location has the room free. The head
// then moves to the technician after the one assigned. When no technician
// qualifies the head stays where it was.
func (s *Service) BookImaging(ctx context.Context, req ImagingRequest) (clinic.Appointment, error) {
	s.mu.Lock()
	appt, err := s.bookImaging(req)
	s.mu.Unlock()

	if err != nil {
		s.logger.Info("imaging booking rejected",
			zap.String("op", "book_imaging"),
			zap.Stringer("date", req.Date),
			zap.Int("timeslot", req.Slot),
			zap.String("room", req.Room.Token()),
			zap.Error(err),
		)
		return clinic.Appointment{}, err
	}

	s.booked(ctx, appt)
	return appt, nil
}

func (s *Service) bookImaging(req ImagingRequest) (clinic.Appointment, error) {
	slot, err := s.checkVisit(req.Date, req.Patient, req.Slot)
	if err != nil {
		return clinic.Appointment{}, err
	}
	if !req.Room.Valid() {
		return clinic.Appointment{}, inputError("room", fmt.Sprint(int(req.Room)), ErrInvalidRoom)
	}

	var (
		chosen *clinic.Technician
		offset int
	)
	for off, tech := range s.ring.Cycle() {
		if !s.isAvailable(tech, req.Date, slot) {
			continue
		}
		if s.roomTaken(tech.Location(), req.Date, slot, req.Room, nil) {
			continue
		}
		chosen, offset = tech, off
		break
	}
	if chosen == nil {
		return clinic.Appointment{}, fmt.Errorf("%w for %s on %s at %s", ErrNoTechnician, req.Room, req.Date, slot)
	}

	appt := clinic.NewImaging(req.Date, slot, req.Patient, chosen, req.Room)
	s.commit(appt)

	next, err := s.ring.CircleGet(offset + 1)
	if err == nil {
		err = s.ring.SetHead(next)
	}
	if err != nil {
		// unreachable while the ring holds chosen
		s.logger.Error("advance technician rotation", zap.Error(err))
	}
	return *appt, nil
}

// Cancel removes the first active appointment matching the request.
func (s *Service) Cancel(ctx context.Context, req CancelRequest) (clinic.Appointment, error) {
	s.mu.Lock()
	appt, err := s.cancel(req)
	s.mu.Unlock()

	if err != nil {
		s.logger.Info("cancel rejected",
			zap.String("op", "cancel"),
			zap.Stringer("date", req.Date),
			zap.Int("timeslot", req.Slot),
			zap.Error(err),
		)
		return clinic.Appointment{}, err
	}

	s.logger.Info("appointment canceled",
		zap.String("op", "cancel"),
		zap.Stringer("appointment_id", appt.ID),
		zap.Stringer("date", appt.Date),
		zap.Stringer("timeslot", appt.Timeslot),
		zap.String("provider", appt.Provider.Profile().String()),
	)
	s.logEvent(ctx, &appt.ID, EventAppointmentCanceled, eventPayload(appt))
	return appt, nil
}

func (s *Service) cancel(req CancelRequest) (clinic.Appointment, error) {
	slot, err := s.checkVisit(req.Date, req.Patient, req.Slot)
	if err != nil {
		return clinic.Appointment{}, err
	}

	var doc *clinic.Doctor
	if req.NPI != "" {
		if doc = s.dir.FindDoctor(req.NPI); doc == nil {
			return clinic.Appointment{}, fmt.Errorf("%w: npi %s", ErrProviderNotFound, req.NPI)
		}
	}

	i, appt := s.find(func(a *clinic.Appointment) bool {
		return a.Date.Equal(req.Date) && a.Timeslot == slot && a.Patient.Equal(req.Patient) &&
			(doc == nil || a.Provider.Equal(doc))
	})
	if appt == nil {
		return clinic.Appointment{}, fmt.Errorf("%s %s %s: %w", req.Date, slot, req.Patient, ErrNotFound)
	}

	if _, err := s.active.RemoveAt(i); err != nil {
		return clinic.Appointment{}, fmt.Errorf("remove appointment: %w", err)
	}
	s.record.Forget(appt)
	return *appt, nil
}

// Reschedule moves the first matching appointment to a new slot on the same
// date. The appointment keeps its provider; imaging appointments also keep
// their room, which must be free at the new slot.
func (s *Service) Reschedule(ctx context.Context, req RescheduleRequest) (clinic.Appointment, error) {
	s.mu.Lock()
	appt, old, err := s.reschedule(req)
	s.mu.Unlock()

	if err != nil {
		s.logger.Info("reschedule rejected",
			zap.String("op", "reschedule"),
			zap.Stringer("date", req.Date),
			zap.Int("timeslot", req.Slot),
			zap.Int("new_timeslot", req.NewSlot),
			zap.Error(err),
		)
		return clinic.Appointment{}, err
	}

	s.logger.Info("appointment rescheduled",
		zap.String("op", "reschedule"),
		zap.Stringer("appointment_id", appt.ID),
		zap.Stringer("date", appt.Date),
		zap.Stringer("from", old),
		zap.Stringer("timeslot", appt.Timeslot),
	)
	payload := eventPayload(appt)
	payload["previous_timeslot"] = old.String()
	s.logEvent(ctx, &appt.ID, EventAppointmentRescheduled, payload)
	return appt, nil
}

func (s *Service) reschedule(req RescheduleRequest) (clinic.Appointment, clinic.Timeslot, error) {
	oldSlot, err := s.checkVisit(req.Date, req.Patient, req.Slot)
	if err != nil {
		return clinic.Appointment{}, clinic.Timeslot{}, err
	}
	newSlot, err := s.resolveSlot(req.NewSlot)
	if err != nil {
		return clinic.Appointment{}, clinic.Timeslot{}, err
	}

	_, appt := s.find(func(a *clinic.Appointment) bool {
		return a.Date.Equal(req.Date) && a.Timeslot == oldSlot && a.Patient.Equal(req.Patient)
	})
	if appt == nil {
		return clinic.Appointment{}, clinic.Timeslot{}, fmt.Errorf("%s %s %s: %w", req.Date, oldSlot, req.Patient, ErrNotFound)
	}

	if _, held := s.find(func(a *clinic.Appointment) bool {
		return a.Date.Equal(req.Date) && a.Timeslot == newSlot && a.Patient.Equal(req.Patient)
	}); held != nil {
		return clinic.Appointment{}, clinic.Timeslot{}, fmt.Errorf("%w: %s on %s at %s", ErrPatientConflict, req.Patient, req.Date, newSlot)
	}
	if !s.isAvailable(appt.Provider, req.Date, newSlot) {
		return clinic.Appointment{}, clinic.Timeslot{}, fmt.Errorf("%w: %s on %s at %s", ErrNotAvailable, appt.Provider, req.Date, newSlot)
	}
	if appt.IsImaging() && s.roomTaken(appt.Location(), req.Date, newSlot, appt.Room, appt) {
		return clinic.Appointment{}, clinic.Timeslot{}, fmt.Errorf("%w: %s at %s on %s at %s",
			ErrRoomUnavailable, appt.Room, appt.Location().Name(), req.Date, newSlot)
	}

	appt.Timeslot = newSlot
	return *appt, oldSlot, nil
}

// IsAvailable reports whether no active appointment holds p at date and slot.
func (s *Service) IsAvailable(p clinic.Provider, date clinic.Date, slot clinic.Timeslot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAvailable(p, date, slot)
}

// Appointments returns a snapshot of the active appointments sorted by mode.
// An empty kind includes both kinds.
func (s *Service) Appointments(mode ordering.Mode, kind clinic.AppointmentKind) []clinic.Appointment {
	s.mu.Lock()
	snap := collection.NewList(func(a, b *clinic.Appointment) bool { return a.Equal(b) })
	for _, a := range s.active.All() {
		if kind == "" || a.Kind == kind {
			c := *a
			snap.Add(&c)
		}
	}
	s.mu.Unlock()

	ordering.Appointments(snap, mode)

	out := make([]clinic.Appointment, 0, snap.Len())
	for _, a := range snap.All() {
		out = append(out, *a)
	}
	return out
}

// Len is the number of active appointments.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active.Len()
}

// Providers returns the directory sorted by profile.
func (s *Service) Providers() []clinic.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.Sorted()
}

// Rotation returns the technicians in rotation order, starting at the head.
func (s *Service) Rotation() []*clinic.Technician {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Values()
}

// BillingStatement charges every patient for their active appointments and
// then clears the schedule.
func (s *Service) BillingStatement(ctx context.Context) []billing.Charge {
	s.mu.Lock()
	rows := billing.Charges(s.record.Patients())
	cleared := s.active.Len()
	s.active.Clear()
	s.record.Clear()
	s.mu.Unlock()

	if len(rows) == 0 {
		return rows
	}

	total := 0
	for _, r := range rows {
		total += r.Amount
	}
	s.logger.Info("billing statement issued",
		zap.String("op", "billing"),
		zap.Int("patients", len(rows)),
		zap.Int("appointments", cleared),
		zap.Int("total", total),
	)
	s.logEvent(ctx, nil, EventBillingIssued, map[string]any{
		"patients":     len(rows),
		"appointments": cleared,
		"total":        total,
	})
	return rows
}

// CreditReport credits every provider, sorted by profile, for its active appointments.
func (s *Service) CreditReport() []billing.Credit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return billing.Credits(s.dir.Sorted(), s.active.Values())
}

func (s *Service) isAvailable(p clinic.Provider, date clinic.Date, slot clinic.Timeslot) bool {
	for _, a := range s.active.All() {
		if a.Occupies(p, date, slot) {
			return false
		}
	}
	return true
}

// roomTaken ignores skip, the appointment being moved.
func (s *Service) roomTaken(loc clinic.Location, date clinic.Date, slot clinic.Timeslot, room clinic.Radiology, skip *clinic.Appointment) bool {
	for _, a := range s.active.All() {
		if a != skip && a.OccupiesRoom(loc, date, slot, room) {
			return true
		}
	}
	return false
}

// find returns the first active appointment matching pred and its index.
func (s *Service) find(pred func(*clinic.Appointment) bool) (int, *clinic.Appointment) {
	for i, a := range s.active.All() {
		if pred(a) {
			return i, a
		}
	}
	return -1, nil
}

func (s *Service) commit(appt *clinic.Appointment) {
	s.active.Add(appt)
	s.record.Record(appt)
}

func (s *Service) booked(ctx context.Context, appt clinic.Appointment) {
	s.logger.Info("appointment booked",
		zap.String("op", "book_"+string(appt.Kind)),
		zap.Stringer("appointment_id", appt.ID),
		zap.Stringer("date", appt.Date),
		zap.Stringer("timeslot", appt.Timeslot),
		zap.String("provider", appt.Provider.Profile().String()),
	)
	s.logEvent(ctx, &appt.ID, EventAppointmentBooked, eventPayload(appt))
}

func eventPayload(a clinic.Appointment) map[string]any {
	payload := map[string]any{
		"kind":     string(a.Kind),
		"date":     a.Date.String(),
		"timeslot": a.Timeslot.String(),
		"patient":  a.Patient.String(),
		"provider": a.Provider.Profile().String(),
		"location": a.Location().Name(),
		"rate":     a.Provider.Rate(),
	}
	if doc, ok := a.Provider.(*clinic.Doctor); ok {
		payload["npi"] = doc.NPI()
	}
	if a.IsImaging() {
		payload["room"] = a.Room.Token()
	}
	return payload
}
