package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hackgods/clinic-scheduling/internal/appointment"
	"github.com/hackgods/clinic-scheduling/internal/clinic"
	"github.com/hackgods/clinic-scheduling/internal/config"
	"github.com/hackgods/clinic-scheduling/internal/directory"
)

const providersFile = `D  ANDREW  PATEL  1/21/1989  BRIDGEWATER  FAMILY  01
D  RACHAEL  LIM  11/30/1979  PRINCETON  PEDIATRICIAN  23
T  MONICA  ZIMNES  11/11/1989  CLARK  120
T  JENNY  PATEL  9/9/1991  PRINCETON  125
`

func newDispatcher(t *testing.T) (*Dispatcher, *appointment.Service) {
	t.Helper()
	dir, _, err := directory.Load(strings.NewReader(providersFile), zap.NewNop())
	require.NoError(t, err)
	svc := appointment.NewService(dir, nil, config.Default(), zap.NewNop(),
		appointment.WithClock(func() clinic.Date { return clinic.NewDate(2026, 10, 14) }))
	return NewDispatcher(svc), svc
}

func exec(t *testing.T, d *Dispatcher, line string) []string {
	t.Helper()
	out, quit := d.Execute(context.Background(), line)
	require.False(t, quit)
	return out
}

func TestTokenize(t *testing.T) {
	cmd := Tokenize("  D, 10/19/2026 ,1,John , Doe,1/1/1990,01 ")
	assert.Equal(t, "D", cmd.Name)
	assert.Equal(t, []string{"10/19/2026", "1", "John", "Doe", "1/1/1990", "01"}, cmd.Fields)

	assert.Equal(t, Command{}, Tokenize("   "))
	assert.Equal(t, Command{Name: "PA", Fields: []string{}}, Tokenize("PA"))
}

func TestExecute_BookOffice(t *testing.T) {
	d, svc := newDispatcher(t)

	out := exec(t, d, "D,10/19/2026,1,John,Doe,1/1/1990,01")
	require.Len(t, out, 1)
	assert.Equal(t,
		"10/19/2026 09:00 AM John Doe 1/1/1990 [ANDREW PATEL 1/21/1989, BRIDGEWATER, Somerset 08807][FAMILY, #01] booked.",
		out[0])
	assert.Equal(t, 1, svc.Len())

	out = exec(t, d, "D,10/19/2026,1,Jane,Roe,2/2/1992,01")
	assert.Contains(t, out[0], "provider is not available")
}

func TestExecute_BookImaging(t *testing.T) {
	d, _ := newDispatcher(t)

	out := exec(t, d, "T,10/19/2026,2,John,Doe,1/1/1990,xray")
	require.Len(t, out, 1)
	// JENNY is the rotation head
	assert.Contains(t, out[0], "JENNY PATEL")
	assert.True(t, strings.HasSuffix(out[0], "[X-ray] booked."), out[0])

	out = exec(t, d, "T,10/19/2026,2,John,Doe,1/1/1990,PET")
	assert.Contains(t, out[0], "PET - imaging service not provided")
}

func TestExecute_InputErrors(t *testing.T) {
	d, svc := newDispatcher(t)

	tests := map[string]struct {
		line string
		want string
	}{
		"non numeric slot": {"D,10/19/2026,one,John,Doe,1/1/1990,01", "timeslot one is not a valid timeslot"},
		"slot 13":          {"D,10/19/2026,13,John,Doe,1/1/1990,01", "timeslot 13 is not a valid timeslot"},
		"missing tokens":   {"D,10/19/2026,1,John", "malformed input"},
		"bad date":         {"D,10-19-2026,1,John,Doe,1/1/1990,01", "malformed input"},
		"saturday":         {"D,10/17/2026,1,John,Doe,1/1/1990,01", "appointment date 10/17/2026 is on a Saturday/Sunday"},
		"one year out":     {"D,10/19/2027,1,John,Doe,1/1/1990,01", "is not within six months"},
		"unknown npi":      {"D,10/19/2026,1,John,Doe,1/1/1990,77", "provider does not exist"},
		"future dob":       {"D,10/19/2026,1,John,Doe,1/1/2030,01", "patient dob 1/1/2030 cannot be today or a future date"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := exec(t, d, tt.line)
			require.Len(t, out, 1)
			assert.Contains(t, out[0], tt.want)
		})
	}
	assert.Equal(t, 0, svc.Len())
}

func TestExecute_UnknownAndBlank(t *testing.T) {
	d, _ := newDispatcher(t)

	assert.Equal(t, []string{msgInvalid}, exec(t, d, "X,1,2"))
	assert.Equal(t, []string{msgInvalid}, exec(t, d, "pa"))
	assert.Nil(t, exec(t, d, ""))
}

func TestExecute_CancelAndReschedule(t *testing.T) {
	d, svc := newDispatcher(t)

	exec(t, d, "D,10/19/2026,1,John,Doe,1/1/1990,01")

	out := exec(t, d, "R,10/19/2026,1,John,Doe,1/1/1990,3")
	assert.True(t, strings.HasPrefix(out[0], "10/19/2026 10:00 AM John Doe"), out[0])
	assert.True(t, strings.HasSuffix(out[0], "rescheduled."), out[0])

	out = exec(t, d, "C,10/19/2026,1,John,Doe,1/1/1990")
	assert.Contains(t, out[0], "appointment does not exist")

	out = exec(t, d, "C,10/19/2026,3,John,Doe,1/1/1990,01")
	assert.True(t, strings.HasSuffix(out[0], "- appointment has been canceled."), out[0])
	assert.Equal(t, 0, svc.Len())
}

func TestExecute_Listings(t *testing.T) {
	d, _ := newDispatcher(t)

	assert.Equal(t, []string{msgEmpty}, exec(t, d, "PA"))

	exec(t, d, "D,10/20/2026,1,John,Doe,1/1/1990,23")
	exec(t, d, "D,10/19/2026,4,Jane,Roe,2/2/1992,01")
	exec(t, d, "T,10/19/2026,4,Amy,Lee,3/3/1993,MRI")

	out := exec(t, d, "PA")
	require.Len(t, out, 5)
	assert.Equal(t, "** List of appointments, ordered by date/time/provider.", out[0])
	assert.True(t, strings.HasPrefix(out[1], "10/19/2026 10:30 AM"))
	assert.True(t, strings.HasPrefix(out[3], "10/20/2026"))
	assert.Equal(t, msgEndOfList, out[4])

	out = exec(t, d, "PP")
	assert.Contains(t, out[1], "John Doe")
	assert.Contains(t, out[3], "Jane Roe")

	out = exec(t, d, "PI")
	require.Len(t, out, 3)
	assert.Contains(t, out[1], "[MRI]")

	out = exec(t, d, "PO")
	require.Len(t, out, 4)
	// Mercer sorts before Somerset
	assert.Contains(t, out[1], "PRINCETON")
}

func TestExecute_Reports(t *testing.T) {
	d, svc := newDispatcher(t)

	exec(t, d, "D,10/19/2026,1,John,Doe,1/1/1990,23")
	exec(t, d, "T,10/19/2026,1,John,Doe,1/1/1990,CATSCAN")

	out := exec(t, d, "PC")
	require.Len(t, out, 6)
	assert.Equal(t, "(1) RACHAEL LIM 11/30/1979 (PRINCETON) [credit amount: $300.00]", out[1])
	assert.Equal(t, msgEndOfList, out[5])

	out = exec(t, d, "PS")
	assert.Equal(t, []string{
		"** Billing statement ordered by patient. **",
		"(1) John Doe 1/1/1990 [due: $425.00]",
		msgEndOfList,
	}, out)

	assert.Equal(t, 0, svc.Len())
	assert.Equal(t, []string{msgEmpty}, exec(t, d, "PS"))
	assert.Equal(t, []string{msgEmpty}, exec(t, d, "PA"))
}

func TestExecute_Quit(t *testing.T) {
	d, _ := newDispatcher(t)

	out, quit := d.Execute(context.Background(), "Q")
	assert.True(t, quit)
	assert.Equal(t, []string{msgTerminated}, out)
}

func TestExecute_EmptyDirectory(t *testing.T) {
	svc := appointment.NewService(directory.New(), nil, config.Default(), zap.NewNop(),
		appointment.WithClock(func() clinic.Date { return clinic.NewDate(2026, 10, 14) }))
	d := NewDispatcher(svc)

	out := exec(t, d, "D,10/19/2026,1,John,Doe,1/1/1990,01")
	assert.Contains(t, out[0], "provider does not exist")

	out = exec(t, d, "T,10/19/2026,1,John,Doe,1/1/1990,XRAY")
	assert.Contains(t, out[0], "cannot find an available technician")

	assert.Equal(t, []string{msgEmpty}, exec(t, d, "PA"))
	assert.Empty(t, Rotation(svc.Rotation()))
}

func TestRotationAndRoster(t *testing.T) {
	_, svc := newDispatcher(t)

	assert.Equal(t, "JENNY PATEL (PRINCETON) --> MONICA ZIMNES (CLARK)", Rotation(svc.Rotation()))

	roster := Roster(svc.Providers())
	require.Len(t, roster, 5)
	assert.Contains(t, roster[1], "RACHAEL LIM")
	assert.Contains(t, roster[4], "MONICA ZIMNES")
}
