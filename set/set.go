package set

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/ddirect/ordered"
	"github.com/google/btree"
)

const degree = 8

// Set holds unique values kept in the order defined by a less function.
// Two values are duplicates when neither is less than the other.
// It is not safe to call any method concurrently from different goroutines.
type Set[T any] struct {
	t *btree.BTreeG[T]
}

func New[T any](less ordered.LessFunc[T]) *Set[T] {
	if less == nil {
		panic(fmt.Errorf("set: nil less function"))
	}
	return &Set[T]{
		t: btree.NewG(degree, btree.LessFunc[T](less)),
	}
}

func NewOrdered[T cmp.Ordered]() *Set[T] {
	return New[T](ordered.Less[T])
}

func NewComparer[T ordered.Comparer[T]]() *Set[T] {
	return New[T](ordered.ByComparer[T])
}

// Of returns a set with the natural ordering holding the given values.
func Of[T cmp.Ordered](values ...T) *Set[T] {
	s := NewOrdered[T]()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Insert adds t unless an equivalent value is already present, in which case
// the stored value is kept. It reports whether t was added.
func (s *Set[T]) Insert(t T) bool {
	if s.t.Has(t) {
		return false
	}
	s.t.ReplaceOrInsert(t)
	return true
}

func (s *Set[T]) InsertSeq(seq iter.Seq[T]) int {
	n := 0
	for t := range seq {
		if s.Insert(t) {
			n++
		}
	}
	return n
}

func (s *Set[T]) Delete(t T) bool {
	_, ok := s.t.Delete(t)
	return ok
}

func (s *Set[T]) Exists(t T) bool {
	return s.t.Has(t)
}

func (s *Set[T]) Len() int {
	return s.t.Len()
}

func (s *Set[T]) Min() (T, bool) {
	return s.t.Min()
}

func (s *Set[T]) Max() (T, bool) {
	return s.t.Max()
}

func (s *Set[T]) Clear() {
	s.t.Clear(false)
}

// Clone returns an independent copy; the two sets share storage lazily
// (copy on write) underneath.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{t: s.t.Clone()}
}

// Values returns the elements in ascending order.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.t.Ascend(yield)
	}
}

// Backward returns the elements in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.t.Descend(yield)
	}
}

// From returns the elements in ascending order, starting at the first one
// which is not less than pivot.
func (s *Set[T]) From(pivot T) iter.Seq[T] {
	return func(yield func(T) bool) {
		s.t.AscendGreaterOrEqual(pivot, yield)
	}
}
