package clinic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownLocation  = errors.New("unknown location")
	ErrUnknownSpecialty = errors.New("unknown specialty")
	ErrUnknownRoom      = errors.New("unknown imaging room")
)

type Location int

const (
	Bridgewater Location = iota + 1
	Edison
	Piscataway
	Princeton
	Morristown
	Clark
)

type site struct {
	name   string
	county string
	zip    string
}

var sites = map[Location]site{
	Bridgewater: {"BRIDGEWATER", "Somerset", "08807"},
	Edison:      {"EDISON", "Middlesex", "08817"},
	Piscataway:  {"PISCATAWAY", "Middlesex", "08854"},
	Princeton:   {"PRINCETON", "Mercer", "08542"},
	Morristown:  {"MORRISTOWN", "Morris", "07960"},
	Clark:       {"CLARK", "Union", "07066"},
}

// Locations lists every clinic site in declaration order.
func Locations() []Location {
	return []Location{Bridgewater, Edison, Piscataway, Princeton, Morristown, Clark}
}

func ParseLocation(s string) (Location, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, l := range Locations() {
		if sites[l].name == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, s)
}

func (l Location) Name() string   { return sites[l].name }
func (l Location) County() string { return sites[l].county }
func (l Location) Zip() string    { return sites[l].zip }

func (l Location) String() string {
	return fmt.Sprintf("%s, %s %s", l.Name(), l.County(), l.Zip())
}

// Specialty is a doctor's field of practice; each carries a flat charge.
type Specialty int

const (
	Family Specialty = iota + 1
	Pediatrician
	Allergist
)

var specialties = map[Specialty]struct {
	name   string
	charge int
}{
	Family:       {"FAMILY", 250},
	Pediatrician: {"PEDIATRICIAN", 300},
	Allergist:    {"ALLERGIST", 350},
}

func ParseSpecialty(s string) (Specialty, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for sp, v := range specialties {
		if v.name == name {
			return sp, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpecialty, s)
}

func (s Specialty) Charge() int    { return specialties[s].charge }
func (s Specialty) String() string { return specialties[s].name }

// Radiology is the kind of imaging room an appointment occupies.
type Radiology int

const (
	CatScan Radiology = iota + 1
	Ultrasound
	XRay
	MRI
)

var rooms = map[Radiology]struct{ token, label string }{
	CatScan:    {"CATSCAN", "CAT Scan"},
	Ultrasound: {"ULTRASOUND", "Ultrasound"},
	XRay:       {"XRAY", "X-ray"},
	MRI:        {"MRI", "MRI"},
}

func ParseRadiology(s string) (Radiology, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	for r, v := range rooms {
		if v.token == token {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRoom, s)
}

func (r Radiology) Valid() bool {
	_, ok := rooms[r]
	return ok
}

func (r Radiology) Token() string  { return rooms[r].token }
func (r Radiology) String() string { return rooms[r].label }
