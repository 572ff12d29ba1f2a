package command

import (
	"fmt"
	"strings"

	"github.com/hackgods/clinic-scheduling/internal/billing"
	"github.com/hackgods/clinic-scheduling/internal/clinic"
)

// Appointments renders a list report. An empty list is a single line.
func Appointments(header string, list []clinic.Appointment) []string {
	if len(list) == 0 {
		return []string{msgEmpty}
	}
	out := make([]string, 0, len(list)+2)
	out = append(out, header)
	for _, a := range list {
		out = append(out, a.String())
	}
	return append(out, msgEndOfList)
}

func Statement(rows []billing.Charge) []string {
	if len(rows) == 0 {
		return []string{msgEmpty}
	}
	out := []string{"** Billing statement ordered by patient. **"}
	for _, r := range rows {
		out = append(out, r.String())
	}
	return append(out, msgEndOfList)
}

func CreditReport(rows []billing.Credit) []string {
	out := []string{"** Credit amount ordered by provider. **"}
	for _, r := range rows {
		out = append(out, r.String())
	}
	return append(out, msgEndOfList)
}

// Roster renders the provider directory as loaded at startup.
func Roster(providers []clinic.Provider) []string {
	out := []string{"Providers loaded to the list."}
	for _, p := range providers {
		out = append(out, p.String())
	}
	return out
}

// Rotation renders the technician ring from its head, e.g.
// CHARLES BROWN (MORRISTOWN) --> GARY JOHNSON (EDISON)
func Rotation(techs []*clinic.Technician) string {
	parts := make([]string, 0, len(techs))
	for _, t := range techs {
		p := t.Profile()
		parts = append(parts, fmt.Sprintf("%s %s (%s)", p.FirstName, p.LastName, t.Location().Name()))
	}
	return strings.Join(parts, " --> ")
}
