package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AddPreservesOrder(t *testing.T) {
	l := NewComparableList[int]()
	for _, v := range []int{3, 1, 2} {
		l.Add(v)
	}

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{3, 1, 2}, l.Values())
}

func TestList_RemoveFirstMatchShiftsLeft(t *testing.T) {
	l := NewComparableList[string]()
	for _, v := range []string{"a", "b", "c", "b"} {
		l.Add(v)
	}

	require.True(t, l.Remove("b"))
	assert.Equal(t, []string{"a", "c", "b"}, l.Values())

	assert.False(t, l.Remove("z"))
	assert.Equal(t, 3, l.Len())
}

func TestList_EqualityIsByValue(t *testing.T) {
	type pair struct{ k, v string }
	l := NewList(func(a, b *pair) bool { return a.k == b.k })
	l.Add(&pair{"x", "1"})
	l.Add(&pair{"y", "2"})

	assert.True(t, l.Contains(&pair{"y", "other"}))
	assert.Equal(t, 1, l.IndexOf(&pair{"y", ""}))
	assert.Equal(t, -1, l.IndexOf(&pair{"q", ""}))
}

func TestList_GetSetBounds(t *testing.T) {
	l := NewComparableList[int]()
	l.Add(10)

	v, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = l.Get(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, l.Set(0, 11))
	assert.ErrorIs(t, l.Set(1, 12), ErrIndexOutOfRange)
	assert.Equal(t, []int{11}, l.Values())
}

func TestList_AllIsRestartable(t *testing.T) {
	l := NewComparableList[int]()
	l.Add(1)
	l.Add(2)

	for range 2 {
		var got []int
		for _, v := range l.All() {
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2}, got)
	}
}

func TestList_Clear(t *testing.T) {
	l := NewComparableList[int]()
	l.Add(1)
	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.False(t, l.Contains(1))
}
