// Package billing aggregates per-patient charges and per-provider credits
// over a set of appointments.
package billing

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hackgods/clinic-scheduling/internal/clinic"
	"github.com/hackgods/clinic-scheduling/internal/collection"
	"github.com/hackgods/clinic-scheduling/internal/ordering"
)

var printer = message.NewPrinter(language.English)

// Charge is one row of a billing statement.
type Charge struct {
	Ordinal int            `json:"ordinal"`
	Patient clinic.Profile `json:"-"`
	Amount  int            `json:"amount"`
}

func (c Charge) String() string {
	return fmt.Sprintf("(%d) %s [due: %s]", c.Ordinal, c.Patient, FormatAmount(c.Amount))
}

// Credit is one row of a credit report.
type Credit struct {
	Ordinal      int             `json:"ordinal"`
	Provider     clinic.Provider `json:"-"`
	Appointments int             `json:"appointments"`
	Amount       int             `json:"amount"`
}

func (c Credit) String() string {
	p := c.Provider.Profile()
	return fmt.Sprintf("(%d) %s (%s) [credit amount: %s]",
		c.Ordinal, p, c.Provider.Location().Name(), FormatAmount(c.Amount))
}

// Charges totals each patient's visits. Rows are ordered by patient profile.
func Charges(patients []*clinic.Patient) []Charge {
	profiles := collection.NewList(func(a, b clinic.Profile) bool { return a.Equal(b) })
	for _, pt := range patients {
		if !profiles.Contains(pt.Profile()) {
			profiles.Add(pt.Profile())
		}
	}
	ordering.Profiles(profiles)

	rows := make([]Charge, 0, profiles.Len())
	for i, p := range profiles.All() {
		total := 0
		for _, pt := range patients {
			if pt.Profile().Equal(p) {
				total += pt.Charge()
			}
		}
		rows = append(rows, Charge{Ordinal: i + 1, Patient: p, Amount: total})
	}
	return rows
}

// Credits counts each provider's appointments and multiplies by its rate.
// providers must already be in report order.
func Credits(providers []clinic.Provider, appts []*clinic.Appointment) []Credit {
	rows := make([]Credit, 0, len(providers))
	for i, p := range providers {
		n := 0
		for _, a := range appts {
			if a.Provider.Equal(p) {
				n++
			}
		}
		rows = append(rows, Credit{Ordinal: i + 1, Provider: p, Appointments: n, Amount: n * p.Rate()})
	}
	return rows
}

// FormatAmount renders whole dollars with thousands separators, e.g. $1,250.00.
func FormatAmount(n int) string {
	return printer.Sprintf("$%d.00", n)
}
