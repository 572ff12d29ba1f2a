package clinic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_IsValid(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want bool
	}{
		{"ordinary", NewDate(2026, 10, 14), true},
		{"month zero", NewDate(2026, 0, 14), false},
		{"month thirteen", NewDate(2026, 13, 1), false},
		{"day zero", NewDate(2026, 1, 0), false},
		{"day thirty two", NewDate(2026, 1, 32), false},
		{"31 in april", NewDate(2026, 4, 31), false},
		{"31 in november", NewDate(2026, 11, 31), false},
		{"31 in december", NewDate(2026, 12, 31), true},
		{"feb 30", NewDate(2028, 2, 30), false},
		{"feb 29 leap", NewDate(2028, 2, 29), true},
		{"feb 29 non leap", NewDate(2027, 2, 29), false},
		{"feb 29 century", NewDate(1900, 2, 29), false},
		{"feb 29 quatercentennial", NewDate(2000, 2, 29), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.IsValid())
		})
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2026, 10, 14)

	assert.Equal(t, 0, a.Compare(NewDate(2026, 10, 14)))
	assert.Equal(t, -1, a.Compare(NewDate(2026, 10, 15)))
	assert.Equal(t, 1, a.Compare(NewDate(2026, 9, 30)))
	assert.Equal(t, -1, a.Compare(NewDate(2027, 1, 1)))
	assert.True(t, a.Before(NewDate(2026, 11, 1)))
	assert.True(t, a.After(NewDate(2025, 12, 31)))
}

func TestDate_Weekday(t *testing.T) {
	assert.Equal(t, time.Wednesday, NewDate(2026, 10, 14).Weekday())
	assert.True(t, NewDate(2026, 10, 17).IsWeekend())
	assert.True(t, NewDate(2026, 10, 18).IsWeekend())
	assert.False(t, NewDate(2026, 10, 19).IsWeekend())
}

func TestDate_AddMonthsClampsDay(t *testing.T) {
	assert.Equal(t, NewDate(2027, 4, 14), NewDate(2026, 10, 14).AddMonths(6))
	assert.Equal(t, NewDate(2027, 2, 28), NewDate(2026, 8, 31).AddMonths(6))
	assert.Equal(t, NewDate(2028, 2, 29), NewDate(2027, 8, 31).AddMonths(6))
	assert.Equal(t, NewDate(2027, 1, 31), NewDate(2026, 12, 31).AddMonths(1))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2/29/2028")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2028, 2, 29), d)
	assert.Equal(t, "2/29/2028", d.String())

	for _, bad := range []string{"", "2/29", "a/1/2024", "1/1/2024/1"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrMalformedDate, bad)
	}
}

func TestParseDate_DoesNotValidateCalendar(t *testing.T) {
	d, err := ParseDate("2/30/2027")
	require.NoError(t, err)
	assert.False(t, d.IsValid())
}
