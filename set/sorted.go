package set

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Sorted returns the items of s in ascending order
func Sorted[T constraints.Ordered](s Set[T]) []T {
	items := s.Items()
	slices.Sort(items)
	return items
}
