package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_CompareIgnoresCase(t *testing.T) {
	dob := NewDate(1989, 12, 13)
	a := NewProfile("john", "DOE", dob)
	b := NewProfile("John", "doe", dob)

	assert.True(t, a.Equal(b))
	assert.Equal(t, -1, NewProfile("Zed", "Adams", dob).Compare(NewProfile("Amy", "Baker", dob)))
	assert.Equal(t, -1, NewProfile("Amy", "Baker", dob).Compare(NewProfile("bob", "Baker", dob)))
	assert.Equal(t, 1, NewProfile("Amy", "Baker", dob).Compare(NewProfile("Amy", "Baker", NewDate(1980, 1, 1))))
}

func TestTimeslotTables(t *testing.T) {
	s, ok := StandardTable.Slot(1)
	require.True(t, ok)
	assert.Equal(t, "09:00 AM", s.String())

	s, ok = StandardTable.Slot(7)
	require.True(t, ok)
	assert.Equal(t, "02:00 PM", s.String())

	_, ok = StandardTable.Slot(0)
	assert.False(t, ok)
	_, ok = StandardTable.Slot(13)
	assert.False(t, ok)

	s, ok = CompactTable.Slot(2)
	require.True(t, ok)
	assert.Equal(t, "10:45 AM", s.String())
	_, ok = CompactTable.Slot(7)
	assert.False(t, ok)

	assert.Equal(t, 12, StandardTable.Len())
	assert.Equal(t, 4, CompactTable.Index(Timeslot{13, 30}))
	assert.Equal(t, 0, CompactTable.Index(Timeslot{9, 30}))
}

func TestTableByName(t *testing.T) {
	tt, err := TableByName("Compact")
	require.NoError(t, err)
	assert.Equal(t, "compact", tt.Name())

	_, err = TableByName("hourly")
	assert.ErrorIs(t, err, ErrUnknownTimeslotTable)
}

func TestTimeslot_Compare(t *testing.T) {
	assert.Equal(t, -1, Timeslot{9, 30}.Compare(Timeslot{10, 0}))
	assert.Equal(t, 1, Timeslot{10, 30}.Compare(Timeslot{10, 0}))
	assert.Equal(t, 0, Timeslot{16, 30}.Compare(Timeslot{16, 30}))
	assert.Equal(t, "12:15 PM", Timeslot{12, 15}.String())
}

func TestParseEnumerations(t *testing.T) {
	loc, err := ParseLocation("piscataway")
	require.NoError(t, err)
	assert.Equal(t, "Middlesex", loc.County())
	assert.Equal(t, "PISCATAWAY, Middlesex 08854", loc.String())
	_, err = ParseLocation("newark")
	assert.ErrorIs(t, err, ErrUnknownLocation)

	sp, err := ParseSpecialty("Allergist")
	require.NoError(t, err)
	assert.Equal(t, 350, sp.Charge())
	_, err = ParseSpecialty("surgeon")
	assert.ErrorIs(t, err, ErrUnknownSpecialty)

	room, err := ParseRadiology("xray")
	require.NoError(t, err)
	assert.Equal(t, "X-ray", room.String())
	assert.True(t, room.Valid())
	_, err = ParseRadiology("PET")
	assert.ErrorIs(t, err, ErrUnknownRoom)
	assert.False(t, Radiology(0).Valid())
}

func TestProvider_EqualityAndRate(t *testing.T) {
	dob := NewDate(1975, 5, 5)
	doc := NewDoctor(NewProfile("Ana", "Patel", dob), Bridgewater, Family, "01")
	sameDoc := NewDoctor(NewProfile("ANA", "patel", dob), Bridgewater, Allergist, "09")
	tech := NewTechnician(NewProfile("Ana", "Patel", dob), Bridgewater, 120)

	assert.True(t, doc.Equal(sameDoc))
	assert.False(t, doc.Equal(tech))
	assert.False(t, tech.Equal(doc))
	assert.Equal(t, 250, doc.Rate())
	assert.Equal(t, 120, tech.Rate())

	var p Provider = tech
	assert.Equal(t, Bridgewater, p.Location())
}

func TestAppointment_EqualAndCompare(t *testing.T) {
	dob := NewDate(1975, 5, 5)
	tech := NewTechnician(NewProfile("Gary", "Jones", dob), Edison, 100)
	pat := NewProfile("John", "Doe", NewDate(1989, 12, 13))
	day := NewDate(2026, 10, 20)

	a := NewImaging(day, Timeslot{9, 0}, pat, tech, XRay)
	b := NewImaging(day, Timeslot{9, 0}, pat, tech, XRay)
	c := NewImaging(day, Timeslot{9, 0}, pat, tech, MRI)

	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, 0, a.Compare(c))

	later := NewImaging(day, Timeslot{9, 30}, pat, tech, XRay)
	assert.Equal(t, -1, a.Compare(later))
	assert.True(t, a.OccupiesRoom(Edison, day, Timeslot{9, 0}, XRay))
	assert.False(t, a.OccupiesRoom(Clark, day, Timeslot{9, 0}, XRay))
	assert.True(t, a.Occupies(tech, day, Timeslot{9, 0}))
}

func TestMedicalRecord_TracksVisits(t *testing.T) {
	dob := NewDate(1975, 5, 5)
	doc := NewDoctor(NewProfile("Ana", "Patel", dob), Bridgewater, Pediatrician, "01")
	tech := NewTechnician(NewProfile("Gary", "Jones", dob), Edison, 125)
	pat := NewProfile("John", "Doe", NewDate(1989, 12, 13))
	day := NewDate(2026, 10, 20)

	office := NewOffice(day, Timeslot{9, 0}, pat, doc)
	imaging := NewImaging(day, Timeslot{10, 0}, pat, tech, MRI)

	rec := NewMedicalRecord()
	rec.Record(office)
	rec.Record(imaging)
	rec.Record(NewOffice(day, Timeslot{9, 0}, NewProfile("Jane", "Roe", dob), doc))

	require.Equal(t, 2, rec.Len())
	john := rec.Find(NewProfile("JOHN", "doe", NewDate(1989, 12, 13)))
	require.NotNil(t, john)
	assert.Equal(t, 425, john.Charge())
	assert.Len(t, john.Visits(), 2)

	require.True(t, rec.Forget(office))
	assert.Equal(t, 125, john.Charge())

	require.True(t, rec.Forget(imaging))
	assert.Nil(t, rec.Find(pat))
	assert.Equal(t, 1, rec.Len())

	assert.False(t, rec.Forget(imaging))
}

func TestMedicalRecord_RescheduledAppointmentStillMatches(t *testing.T) {
	doc := NewDoctor(NewProfile("Ana", "Patel", NewDate(1975, 5, 5)), Bridgewater, Family, "01")
	pat := NewProfile("John", "Doe", NewDate(1989, 12, 13))
	appt := NewOffice(NewDate(2026, 10, 20), Timeslot{9, 0}, pat, doc)

	rec := NewMedicalRecord()
	rec.Record(appt)
	appt.Timeslot = Timeslot{14, 0}

	visits := rec.Find(pat).Visits()
	require.Len(t, visits, 1)
	assert.Equal(t, Timeslot{14, 0}, visits[0].Appointment.Timeslot)
	assert.True(t, rec.Forget(appt))
}
