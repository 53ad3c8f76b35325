package set

import (
	"slices"

	"deedles.dev/xiter"
)

func insertSet[T comparable](s, sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func intersectionUpdate[T comparable](s, other Set[T]) {
	missing := slices.Collect(xiter.Filter(s.All(), func(item T) bool {
		return !other.Has(item)
	}))

	for _, item := range missing {
		s.Remove(item)
	}
}

// items are snapshotted first so that s and other may be the same collection
func differenceUpdate[T comparable](s, other Set[T]) {
	for _, item := range other.Items() {
		s.Remove(item)
	}
}

func symmetricDifferenceUpdate[T comparable](s, other Set[T]) {
	for _, item := range other.Items() {
		if !s.Remove(item) {
			s.Insert(item)
		}
	}
}

func isSubset[T comparable](s, other Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}

	for item := range s.All() {
		if !other.Has(item) {
			return false
		}
	}

	return true
}

func isDisjoint[T comparable](s, other Set[T]) bool {
	small, big := s, other
	if big.Len() < small.Len() {
		small, big = big, small
	}

	for range xiter.Filter(small.All(), big.Has) {
		return false
	}

	return true
}

func equal[T comparable](s, other Set[T]) bool {
	return s.Len() == other.Len() && isSubset(s, other)
}
