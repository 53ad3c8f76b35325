// Package set holds the backing collections persistent sets delegate to.
package set

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("item not found")
)

type nothing struct{}

type Set[T comparable] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Pop() (T, error)
	Clear()
	Has(item T) bool
	Len() int
	Items() []T
	All() iter.Seq[T]
	InsertSet(sourceSet Set[T]) (modified bool)
	Clone() Set[T]

	Union(other Set[T]) Set[T]
	Intersection(other Set[T]) Set[T]
	Difference(other Set[T]) Set[T]
	SymmetricDifference(other Set[T]) Set[T]

	IntersectionUpdate(other Set[T])
	DifferenceUpdate(other Set[T])
	SymmetricDifferenceUpdate(other Set[T])

	IsSubset(other Set[T]) bool
	IsSuperset(other Set[T]) bool
	IsDisjoint(other Set[T]) bool
	Equal(other Set[T]) bool
}

// Reflected is implemented by collections that can compute an operator
// with themselves as the right hand operand, i.e. other OP s.
type Reflected[T comparable] interface {
	ReflectedUnion(other Set[T]) Set[T]
	ReflectedIntersection(other Set[T]) Set[T]
	ReflectedDifference(other Set[T]) Set[T]
	ReflectedSymmetricDifference(other Set[T]) Set[T]
}
