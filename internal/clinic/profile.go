package clinic

import (
	"fmt"
	"strings"
)

// Profile identifies a person. Profiles order by last name, first name
// (both case-insensitive), then date of birth.
type Profile struct {
	FirstName string
	LastName  string
	DOB       Date
}

func NewProfile(first, last string, dob Date) Profile {
	return Profile{FirstName: first, LastName: last, DOB: dob}
}

func (p Profile) Compare(o Profile) int {
	if c := compareFold(p.LastName, o.LastName); c != 0 {
		return c
	}
	if c := compareFold(p.FirstName, o.FirstName); c != 0 {
		return c
	}
	return p.DOB.Compare(o.DOB)
}

func (p Profile) Equal(o Profile) bool {
	return p.Compare(o) == 0
}

func (p Profile) String() string {
	return fmt.Sprintf("%s %s %s", p.FirstName, p.LastName, p.DOB)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
