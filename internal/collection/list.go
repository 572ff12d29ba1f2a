package collection

import (
	"errors"
	"fmt"
	"iter"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// List is an order-preserving sequence compared by value equality.
// It does not enforce uniqueness.
type List[T any] struct {
	items []T
	equal func(a, b T) bool
}

// NewList creates an empty list that uses equal for Contains, IndexOf and Remove.
func NewList[T any](equal func(a, b T) bool) *List[T] {
	return &List[T]{equal: equal}
}

// NewComparableList creates a list using the == operator.
func NewComparableList[T comparable]() *List[T] {
	return NewList(func(a, b T) bool { return a == b })
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) IsEmpty() bool {
	return len(l.items) == 0
}

func (l *List[T]) Add(e T) {
	l.items = append(l.items, e)
}

// Remove deletes the first element equal to e and reports whether one was found.
func (l *List[T]) Remove(e T) bool {
	i := l.IndexOf(e)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

// RemoveAt deletes the element at index i, shifting the tail left.
func (l *List[T]) RemoveAt(i int) (T, error) {
	var zero T
	if err := l.check(i); err != nil {
		return zero, err
	}
	e := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return e, nil
}

func (l *List[T]) Contains(e T) bool {
	return l.IndexOf(e) >= 0
}

// IndexOf returns the index of the first element equal to e, or -1.
func (l *List[T]) IndexOf(e T) int {
	for i, it := range l.items {
		if l.equal(it, e) {
			return i
		}
	}
	return -1
}

func (l *List[T]) Get(i int) (T, error) {
	if err := l.check(i); err != nil {
		var zero T
		return zero, err
	}
	return l.items[i], nil
}

func (l *List[T]) Set(i int, e T) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.items[i] = e
	return nil
}

// Clear removes every element.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// All yields the elements in storage order. The sequence can be ranged over repeatedly.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range l.items {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values returns a copy of the elements in storage order.
func (l *List[T]) Values() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List[T]) check(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, len(l.items))
	}
	return nil
}
