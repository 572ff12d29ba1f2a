// Package ordering sorts appointments and providers in place with a stable
// insertion sort. Each mode is a total order whose tie-break chain ends in the
// natural appointment order (date, timeslot, provider, patient).
package ordering

import (
	"fmt"
	"strings"

	"github.com/hackgods/clinic-scheduling/internal/clinic"
	"github.com/hackgods/clinic-scheduling/internal/collection"
)

type Mode int

const (
	// Chronological orders by date, timeslot, then provider profile.
	Chronological Mode = iota
	// ByPatient orders by patient profile, then chronologically.
	ByPatient
	// ByLocation orders by provider county (case-insensitive), then chronologically.
	ByLocation
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "date", "chronological":
		return Chronological, nil
	case "patient":
		return ByPatient, nil
	case "location", "county":
		return ByLocation, nil
	}
	return 0, fmt.Errorf("unknown ordering %q", s)
}

func (m Mode) String() string {
	switch m {
	case ByPatient:
		return "patient"
	case ByLocation:
		return "location"
	default:
		return "chronological"
	}
}

// Comparator returns the comparison function for the mode.
func (m Mode) Comparator() func(a, b *clinic.Appointment) int {
	switch m {
	case ByPatient:
		return byPatient
	case ByLocation:
		return byLocation
	default:
		return chronological
	}
}

func chronological(a, b *clinic.Appointment) int {
	return a.Compare(b)
}

func byPatient(a, b *clinic.Appointment) int {
	if c := a.Patient.Compare(b.Patient); c != 0 {
		return c
	}
	return a.Compare(b)
}

func byLocation(a, b *clinic.Appointment) int {
	ca, cb := strings.ToLower(a.Location().County()), strings.ToLower(b.Location().County())
	if c := strings.Compare(ca, cb); c != 0 {
		return c
	}
	return a.Compare(b)
}

// Appointments sorts the list in place by mode.
func Appointments(l *collection.List[*clinic.Appointment], mode Mode) {
	insertionSort(l, mode.Comparator())
}

// Providers sorts the list in place by provider profile.
func Providers(l *collection.List[clinic.Provider]) {
	insertionSort(l, func(a, b clinic.Provider) int {
		return a.Profile().Compare(b.Profile())
	})
}

// Profiles sorts the list in place.
func Profiles(l *collection.List[clinic.Profile]) {
	insertionSort(l, clinic.Profile.Compare)
}

func insertionSort[T any](l *collection.List[T], cmp func(a, b T) int) {
	for i := 1; i < l.Len(); i++ {
		key, _ := l.Get(i)
		j := i - 1
		for ; j >= 0; j-- {
			prev, _ := l.Get(j)
			if cmp(key, prev) >= 0 {
				break
			}
			_ = l.Set(j+1, prev)
		}
		_ = l.Set(j+1, key)
	}
}
