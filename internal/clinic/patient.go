package clinic

import "github.com/hackgods/clinic-scheduling/internal/collection"

// Visit wraps one appointment in a patient's history.
type Visit struct {
	Appointment *Appointment
}

func (v Visit) Equal(o Visit) bool {
	return v.Appointment.Equal(o.Appointment)
}

// Patient owns its visits in the order they were added.
type Patient struct {
	profile Profile
	visits  *collection.List[Visit]
}

func NewPatient(p Profile) *Patient {
	return &Patient{
		profile: p,
		visits:  collection.NewList(func(a, b Visit) bool { return a.Equal(b) }),
	}
}

func (p *Patient) Profile() Profile { return p.profile }

func (p *Patient) AddVisit(v Visit) {
	p.visits.Add(v)
}

// RemoveVisit drops the first visit whose appointment equals v's.
func (p *Patient) RemoveVisit(v Visit) bool {
	return p.visits.Remove(v)
}

func (p *Patient) Visits() []Visit {
	return p.visits.Values()
}

func (p *Patient) HasVisits() bool {
	return !p.visits.IsEmpty()
}

// Charge totals the provider rate of every visit.
func (p *Patient) Charge() int {
	total := 0
	for _, v := range p.visits.All() {
		total += v.Appointment.Provider.Rate()
	}
	return total
}

// MedicalRecord indexes patients by profile in first-seen order.
type MedicalRecord struct {
	patients *collection.List[*Patient]
}

func NewMedicalRecord() *MedicalRecord {
	return &MedicalRecord{
		patients: collection.NewList(func(a, b *Patient) bool { return a.profile.Equal(b.profile) }),
	}
}

func (m *MedicalRecord) Find(p Profile) *Patient {
	for _, pt := range m.patients.All() {
		if pt.profile.Equal(p) {
			return pt
		}
	}
	return nil
}

// Record appends a visit for the appointment's patient, registering the patient if new.
func (m *MedicalRecord) Record(a *Appointment) {
	pt := m.Find(a.Patient)
	if pt == nil {
		pt = NewPatient(a.Patient)
		m.patients.Add(pt)
	}
	pt.AddVisit(Visit{Appointment: a})
}

// Forget removes the appointment's visit. Patients left without visits are dropped.
func (m *MedicalRecord) Forget(a *Appointment) bool {
	pt := m.Find(a.Patient)
	if pt == nil {
		return false
	}
	ok := pt.RemoveVisit(Visit{Appointment: a})
	if !pt.HasVisits() {
		m.patients.Remove(pt)
	}
	return ok
}

func (m *MedicalRecord) Patients() []*Patient {
	return m.patients.Values()
}

func (m *MedicalRecord) Len() int {
	return m.patients.Len()
}

func (m *MedicalRecord) Clear() {
	m.patients.Clear()
}
