package set

import (
	"iter"
	"maps"

	"github.com/denismitr/pset/utils"
	"github.com/pkg/errors"
)

// HashSet - is an unordered set
type HashSet[T comparable] struct {
	m map[T]nothing
}

var (
	_ Set[int]       = (*HashSet[int])(nil)
	_ Reflected[int] = (*HashSet[int])(nil)
)

func NewHashSet[T comparable]() *HashSet[T] {
	return &HashSet[T]{
		m: make(map[T]nothing),
	}
}

// NewHashSetFrom collects items into a fresh HashSet
func NewHashSetFrom[T comparable](items ...T) *HashSet[T] {
	s := &HashSet[T]{
		m: make(map[T]nothing, len(items)),
	}
	s.InsertSlice(items)
	return s
}

func (s *HashSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = nothing{}
		modified = true
	}

	return modified
}

func (s *HashSet[T]) Clear() {
	s.m = make(map[T]nothing)
}

func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

func (s *HashSet[T]) All() iter.Seq[T] {
	return maps.Keys(s.m)
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Remove(item T) bool {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		return true
	}

	return false
}

// Pop removes and returns an arbitrary item
func (s *HashSet[T]) Pop() (T, error) {
	for item := range s.m {
		delete(s.m, item)
		return item, nil
	}

	return utils.GetZero[T](), errors.Wrap(ErrNotFound, "pop from an empty set")
}

func (s *HashSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	return insertSet[T](s, sourceSet)
}

func (s *HashSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}

func (s *HashSet[T]) Clone() Set[T] {
	return &HashSet[T]{m: maps.Clone(s.m)}
}

func (s *HashSet[T]) Union(other Set[T]) Set[T] {
	result := s.Clone()
	result.InsertSet(other)
	return result
}

func (s *HashSet[T]) Intersection(other Set[T]) Set[T] {
	result := NewHashSet[T]()
	for item := range s.m {
		if other.Has(item) {
			result.m[item] = nothing{}
		}
	}
	return result
}

func (s *HashSet[T]) Difference(other Set[T]) Set[T] {
	result := NewHashSet[T]()
	for item := range s.m {
		if !other.Has(item) {
			result.m[item] = nothing{}
		}
	}
	return result
}

func (s *HashSet[T]) SymmetricDifference(other Set[T]) Set[T] {
	result := s.Clone()
	result.SymmetricDifferenceUpdate(other)
	return result
}

func (s *HashSet[T]) IntersectionUpdate(other Set[T]) {
	intersectionUpdate[T](s, other)
}

func (s *HashSet[T]) DifferenceUpdate(other Set[T]) {
	differenceUpdate[T](s, other)
}

func (s *HashSet[T]) SymmetricDifferenceUpdate(other Set[T]) {
	symmetricDifferenceUpdate[T](s, other)
}

func (s *HashSet[T]) IsSubset(other Set[T]) bool {
	return isSubset[T](s, other)
}

func (s *HashSet[T]) IsSuperset(other Set[T]) bool {
	return isSubset(other, Set[T](s))
}

func (s *HashSet[T]) IsDisjoint(other Set[T]) bool {
	return isDisjoint[T](s, other)
}

func (s *HashSet[T]) Equal(other Set[T]) bool {
	return equal[T](s, other)
}

// Reflected forms produce a HashSet regardless of the kind of other.

func (s *HashSet[T]) ReflectedUnion(other Set[T]) Set[T] {
	result := s.Clone()
	result.InsertSet(other)
	return result
}

func (s *HashSet[T]) ReflectedIntersection(other Set[T]) Set[T] {
	result := NewHashSet[T]()
	for item := range other.All() {
		if s.Has(item) {
			result.m[item] = nothing{}
		}
	}
	return result
}

func (s *HashSet[T]) ReflectedDifference(other Set[T]) Set[T] {
	result := NewHashSet[T]()
	for item := range other.All() {
		if !s.Has(item) {
			result.m[item] = nothing{}
		}
	}
	return result
}

func (s *HashSet[T]) ReflectedSymmetricDifference(other Set[T]) Set[T] {
	return s.SymmetricDifference(other)
}
