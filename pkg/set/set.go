package set

import (
	"cmp"
	"maps"
	"slices"
)

type Set[T comparable] map[T]struct{}

// New returns an empty set; the optional hint preallocates room for that many items.
func New[T comparable](hint ...int) Set[T] {
	if len(hint) > 0 && hint[0] > 0 {
		return make(Set[T], hint[0])
	}

	return make(Set[T])
}

func (s Set[T]) Add(item ...T) {
	for _, i := range item {
		s[i] = struct{}{}
	}
}

// Insert adds item and reports whether it was absent before.
func (s Set[T]) Insert(item T) bool {
	if _, ok := s[item]; ok {
		return false
	}

	s[item] = struct{}{}
	return true
}

func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Size() int {
	return len(s)
}

func (s Set[T]) Slice() []T {
	return slices.Collect(maps.Keys(s))
}

// Sorted returns the items of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}
