package collection

import (
	"errors"
	"iter"
)

var (
	ErrNotMember = errors.New("element is not a member of the ring")
	ErrEmptyRing = errors.New("ring is empty")
)

// Ring is a circular view over a List with a movable head cursor.
// The head always indexes a member while the ring is non-empty.
type Ring[T any] struct {
	list *List[T]
	head int
}

func NewRing[T any](equal func(a, b T) bool) *Ring[T] {
	return &Ring[T]{list: NewList(equal), head: -1}
}

func (r *Ring[T]) Len() int {
	return r.list.Len()
}

// Add appends e to the backing sequence. The first element added becomes the head.
func (r *Ring[T]) Add(e T) {
	r.list.Add(e)
	if r.head < 0 {
		r.head = 0
	}
}

// Remove deletes the first element equal to e. When the head is removed the
// element that followed it becomes the head.
func (r *Ring[T]) Remove(e T) bool {
	i := r.list.IndexOf(e)
	if i < 0 {
		return false
	}
	r.list.RemoveAt(i)
	switch {
	case r.list.Len() == 0:
		r.head = -1
	case i < r.head:
		r.head--
	case r.head >= r.list.Len():
		r.head = 0
	}
	return true
}

func (r *Ring[T]) Contains(e T) bool {
	return r.list.Contains(e)
}

// SetHead moves the cursor to e.
func (r *Ring[T]) SetHead(e T) error {
	i := r.list.IndexOf(e)
	if i < 0 {
		return ErrNotMember
	}
	r.head = i
	return nil
}

func (r *Ring[T]) Head() (T, bool) {
	if r.head < 0 {
		var zero T
		return zero, false
	}
	return r.list.items[r.head], true
}

// CircleGet returns the element i positions after the head, wrapping around.
func (r *Ring[T]) CircleGet(i int) (T, error) {
	n := r.list.Len()
	if n == 0 {
		var zero T
		return zero, ErrEmptyRing
	}
	idx := ((r.head+i)%n + n) % n
	return r.list.items[idx], nil
}

// Cycle yields every member exactly once starting at the head, paired with its
// offset from the head. The head observed when iteration starts is used
// throughout, so moving the head mid-iteration does not restart the cycle.
func (r *Ring[T]) Cycle() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := r.list.Len()
		start := r.head
		for off := 0; off < n; off++ {
			m := r.list.Len()
			if off >= m {
				return
			}
			if !yield(off, r.list.items[(start+off)%m]) {
				return
			}
		}
	}
}

// Values returns the members in cycle order starting at the head.
func (r *Ring[T]) Values() []T {
	out := make([]T, 0, r.list.Len())
	for _, e := range r.Cycle() {
		out = append(out, e)
	}
	return out
}
