// Package command turns comma separated console lines into engine requests
// and renders the results.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hackgods/clinic-scheduling/internal/appointment"
	"github.com/hackgods/clinic-scheduling/internal/clinic"
)

var ErrMalformed = errors.New("malformed input")

// Command is one tokenized line. Name is field 0 verbatim; commands are case sensitive.
type Command struct {
	Name   string
	Fields []string
}

// Tokenize splits a line on commas and trims each field. A blank line yields
// a zero Command.
func Tokenize(line string) Command {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}
	}
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return Command{Name: parts[0], Fields: parts[1:]}
}

func (c Command) need(n int) error {
	if len(c.Fields) < n {
		return fmt.Errorf("%w: %s needs %d fields, got %d", ErrMalformed, c.Name, n, len(c.Fields))
	}
	return nil
}

// visit holds the date, slot and patient fields every booking command starts with.
type visit struct {
	date    clinic.Date
	slot    int
	patient clinic.Profile
}

func (c Command) visit() (visit, error) {
	if err := c.need(5); err != nil {
		return visit{}, err
	}
	date, err := parseDate("appointment date", c.Fields[0])
	if err != nil {
		return visit{}, err
	}
	slot, err := parseSlot(c.Fields[1])
	if err != nil {
		return visit{}, err
	}
	dob, err := parseDate("patient dob", c.Fields[4])
	if err != nil {
		return visit{}, err
	}
	return visit{date: date, slot: slot, patient: clinic.NewProfile(c.Fields[2], c.Fields[3], dob)}, nil
}

func (c Command) Office() (appointment.OfficeRequest, error) {
	if err := c.need(6); err != nil {
		return appointment.OfficeRequest{}, err
	}
	v, err := c.visit()
	if err != nil {
		return appointment.OfficeRequest{}, err
	}
	return appointment.OfficeRequest{Date: v.date, Slot: v.slot, Patient: v.patient, NPI: c.Fields[5]}, nil
}

func (c Command) Imaging() (appointment.ImagingRequest, error) {
	if err := c.need(6); err != nil {
		return appointment.ImagingRequest{}, err
	}
	v, err := c.visit()
	if err != nil {
		return appointment.ImagingRequest{}, err
	}
	room, err := clinic.ParseRadiology(c.Fields[5])
	if err != nil {
		return appointment.ImagingRequest{}, fmt.Errorf("%s - imaging service not provided: %w", c.Fields[5], err)
	}
	return appointment.ImagingRequest{Date: v.date, Slot: v.slot, Patient: v.patient, Room: room}, nil
}

// Cancel accepts an optional trailing NPI.
func (c Command) Cancel() (appointment.CancelRequest, error) {
	v, err := c.visit()
	if err != nil {
		return appointment.CancelRequest{}, err
	}
	req := appointment.CancelRequest{Date: v.date, Slot: v.slot, Patient: v.patient}
	if len(c.Fields) > 5 {
		req.NPI = c.Fields[5]
	}
	return req, nil
}

func (c Command) Reschedule() (appointment.RescheduleRequest, error) {
	if err := c.need(6); err != nil {
		return appointment.RescheduleRequest{}, err
	}
	v, err := c.visit()
	if err != nil {
		return appointment.RescheduleRequest{}, err
	}
	newSlot, err := parseSlot(c.Fields[5])
	if err != nil {
		return appointment.RescheduleRequest{}, err
	}
	return appointment.RescheduleRequest{Date: v.date, Slot: v.slot, Patient: v.patient, NewSlot: newSlot}, nil
}

func parseDate(field, s string) (clinic.Date, error) {
	d, err := clinic.ParseDate(s)
	if err != nil {
		return clinic.Date{}, fmt.Errorf("%w: %s %q: %w", ErrMalformed, field, s, err)
	}
	return d, nil
}

// parseSlot rejects non-numeric tokens the same way the engine rejects
// out-of-range indices.
func parseSlot(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &appointment.InputError{Field: "timeslot", Value: s, Err: appointment.ErrInvalidTimeslot}
	}
	return n, nil
}
