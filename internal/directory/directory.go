package directory

import (
	"errors"
	"fmt"

	"github.com/hackgods/clinic-scheduling/internal/clinic"
	"github.com/hackgods/clinic-scheduling/internal/collection"
	"github.com/hackgods/clinic-scheduling/internal/ordering"
)

var ErrDuplicateNPI = errors.New("a provider with this npi already exists")

// Directory holds the providers loaded at startup in load order.
type Directory struct {
	providers *collection.List[clinic.Provider]
}

func New() *Directory {
	return &Directory{
		providers: collection.NewList(func(a, b clinic.Provider) bool { return a.Equal(b) }),
	}
}

// Add appends p. A doctor whose NPI is already present is rejected.
func (d *Directory) Add(p clinic.Provider) error {
	if doc, ok := p.(*clinic.Doctor); ok {
		if d.FindDoctor(doc.NPI()) != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateNPI, doc.NPI())
		}
	}
	d.providers.Add(p)
	return nil
}

func (d *Directory) Len() int {
	return d.providers.Len()
}

// FindDoctor returns the doctor with the given NPI, or nil.
func (d *Directory) FindDoctor(npi string) *clinic.Doctor {
	for _, p := range d.providers.All() {
		if doc, ok := p.(*clinic.Doctor); ok && doc.NPI() == npi {
			return doc
		}
	}
	return nil
}

// Technicians returns technicians in reverse load order, which is the order
// the rotation is built in.
func (d *Directory) Technicians() []*clinic.Technician {
	var out []*clinic.Technician
	for i := d.providers.Len() - 1; i >= 0; i-- {
		p, _ := d.providers.Get(i)
		if tech, ok := p.(*clinic.Technician); ok {
			out = append(out, tech)
		}
	}
	return out
}

// Providers returns a copy in current storage order.
func (d *Directory) Providers() []clinic.Provider {
	return d.providers.Values()
}

// Sorted returns a copy ordered by provider profile. Storage order is unchanged.
func (d *Directory) Sorted() []clinic.Provider {
	cp := collection.NewList(func(a, b clinic.Provider) bool { return a.Equal(b) })
	for _, p := range d.providers.All() {
		cp.Add(p)
	}
	ordering.Providers(cp)
	return cp.Values()
}
