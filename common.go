package ordered

import "cmp"

type Comparer[T any] interface {
	Before(T) bool
}

// LessFunc is a strict weak ordering: it reports whether a sorts before b.
type LessFunc[T any] func(a, b T) bool

func Less[T cmp.Ordered](a, b T) bool {
	return a < b
}

func ByComparer[T Comparer[T]](a, b T) bool {
	return a.Before(b)
}

func Reverse[T any](less LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// Equivalent reports whether neither value sorts before the other.
func Equivalent[T any](less LessFunc[T], a, b T) bool {
	return !less(a, b) && !less(b, a)
}
