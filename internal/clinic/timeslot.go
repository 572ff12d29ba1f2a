package clinic

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTimeslotTable = errors.New("unknown timeslot table")

// Timeslot is a wall-clock start time.
type Timeslot struct {
	Hour   int
	Minute int
}

func (t Timeslot) Compare(o Timeslot) int {
	if t.Hour != o.Hour {
		return sign(t.Hour - o.Hour)
	}
	return sign(t.Minute - o.Minute)
}

func (t Timeslot) Equal(o Timeslot) bool {
	return t == o
}

// String renders 12-hour time, e.g. "09:30 AM".
func (t Timeslot) String() string {
	period := "AM"
	if t.Hour >= 12 {
		period = "PM"
	}
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h, t.Minute, period)
}

// TimeslotTable maps 1-based indices to the slots offered each day.
type TimeslotTable struct {
	name  string
	slots []Timeslot
}

var (
	StandardTable = TimeslotTable{name: "standard", slots: []Timeslot{
		{9, 0}, {9, 30}, {10, 0}, {10, 30}, {11, 0}, {11, 30},
		{14, 0}, {14, 30}, {15, 0}, {15, 30}, {16, 0}, {16, 30},
	}}
	CompactTable = TimeslotTable{name: "compact", slots: []Timeslot{
		{9, 0}, {10, 45}, {11, 15}, {13, 30}, {15, 0}, {16, 15},
	}}
)

// TableByName resolves "standard" or "compact".
func TableByName(name string) (TimeslotTable, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StandardTable.name:
		return StandardTable, nil
	case CompactTable.name:
		return CompactTable, nil
	}
	return TimeslotTable{}, fmt.Errorf("%w: %q", ErrUnknownTimeslotTable, name)
}

func (tt TimeslotTable) Name() string {
	return tt.name
}

func (tt TimeslotTable) Len() int {
	return len(tt.slots)
}

// Slot returns the timeslot at the 1-based index n.
func (tt TimeslotTable) Slot(n int) (Timeslot, bool) {
	if n < 1 || n > len(tt.slots) {
		return Timeslot{}, false
	}
	return tt.slots[n-1], true
}

// Index returns the 1-based index of t, or 0 when t is not in the table.
func (tt TimeslotTable) Index(t Timeslot) int {
	for i, s := range tt.slots {
		if s == t {
			return i + 1
		}
	}
	return 0
}
