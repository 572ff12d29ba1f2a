package clinic

import "fmt"

// Provider is implemented only by *Doctor and *Technician.
type Provider interface {
	Profile() Profile
	Location() Location
	// Rate is the amount charged to a patient, and credited to the provider, per appointment.
	Rate() int
	Equal(Provider) bool
	String() string

	provider()
}

type base struct {
	profile  Profile
	location Location
}

func (b base) Profile() Profile   { return b.profile }
func (b base) Location() Location { return b.location }

func (b base) same(o Provider) bool {
	return b.profile.Equal(o.Profile()) && b.location == o.Location()
}

// Doctor sees patients for office appointments.
type Doctor struct {
	base
	specialty Specialty
	npi       string
}

func NewDoctor(p Profile, loc Location, sp Specialty, npi string) *Doctor {
	return &Doctor{base: base{profile: p, location: loc}, specialty: sp, npi: npi}
}

func (d *Doctor) Specialty() Specialty { return d.specialty }
func (d *Doctor) NPI() string          { return d.npi }
func (d *Doctor) Rate() int            { return d.specialty.Charge() }

func (d *Doctor) Equal(o Provider) bool {
	od, ok := o.(*Doctor)
	return ok && od != nil && d.same(od)
}

func (d *Doctor) String() string {
	return fmt.Sprintf("[%s, %s][%s, #%s]", d.profile, d.location, d.specialty, d.npi)
}

func (*Doctor) provider() {}

// Technician runs imaging rooms and is assigned by rotation.
type Technician struct {
	base
	ratePerVisit int
}

func NewTechnician(p Profile, loc Location, ratePerVisit int) *Technician {
	return &Technician{base: base{profile: p, location: loc}, ratePerVisit: ratePerVisit}
}

func (t *Technician) Rate() int { return t.ratePerVisit }

func (t *Technician) Equal(o Provider) bool {
	ot, ok := o.(*Technician)
	return ok && ot != nil && t.same(ot)
}

func (t *Technician) String() string {
	return fmt.Sprintf("[%s, %s][rate: $%d.00]", t.profile, t.location, t.ratePerVisit)
}

func (*Technician) provider() {}
