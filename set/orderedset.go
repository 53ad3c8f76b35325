package set

import (
	"iter"

	"github.com/denismitr/dll"
	"github.com/denismitr/pset/utils"
	"github.com/pkg/errors"
)

// OrderedSet keeps items in the order they were first inserted.
// It has no reflected operator forms.
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}
}

// NewOrderedSetFrom collects items into a fresh OrderedSet
func NewOrderedSetFrom[T comparable](items ...T) *OrderedSet[T] {
	s := NewOrderedSet[T]()
	s.InsertSlice(items)
	return s
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	return insertSet[T](s, sourceSet)
}

func (s *OrderedSet[T]) Clear() {
	s.m = make(map[T]*dll.Element[T])
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Remove(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, el.Value())
		s.list.Remove(el)
		return true
	}

	return false
}

// Pop removes and returns the oldest item
func (s *OrderedSet[T]) Pop() (T, error) {
	head := s.list.Head()
	if head == nil {
		return utils.GetZero[T](), errors.Wrap(ErrNotFound, "pop from an empty set")
	}

	item := head.Value()
	delete(s.m, item)
	s.list.Remove(head)
	return item, nil
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		item := curr.Value()
		items = append(items, item)
		curr = curr.Next()
	}
	return items
}

func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		curr := s.list.Head()
		for curr != nil {
			next := curr.Next()
			if !yield(curr.Value()) {
				return
			}
			curr = next
		}
	}
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.m)
}

func (s *OrderedSet[T]) Clone() Set[T] {
	result := NewOrderedSet[T]()
	curr := s.list.Head()
	for curr != nil {
		result.Insert(curr.Value())
		curr = curr.Next()
	}
	return result
}

func (s *OrderedSet[T]) Union(other Set[T]) Set[T] {
	result := s.Clone()
	result.InsertSet(other)
	return result
}

func (s *OrderedSet[T]) Intersection(other Set[T]) Set[T] {
	result := s.Clone()
	result.IntersectionUpdate(other)
	return result
}

func (s *OrderedSet[T]) Difference(other Set[T]) Set[T] {
	result := s.Clone()
	result.DifferenceUpdate(other)
	return result
}

func (s *OrderedSet[T]) SymmetricDifference(other Set[T]) Set[T] {
	result := s.Clone()
	result.SymmetricDifferenceUpdate(other)
	return result
}

func (s *OrderedSet[T]) IntersectionUpdate(other Set[T]) {
	intersectionUpdate[T](s, other)
}

func (s *OrderedSet[T]) DifferenceUpdate(other Set[T]) {
	differenceUpdate[T](s, other)
}

func (s *OrderedSet[T]) SymmetricDifferenceUpdate(other Set[T]) {
	symmetricDifferenceUpdate[T](s, other)
}

func (s *OrderedSet[T]) IsSubset(other Set[T]) bool {
	return isSubset[T](s, other)
}

func (s *OrderedSet[T]) IsSuperset(other Set[T]) bool {
	return isSubset(other, Set[T](s))
}

func (s *OrderedSet[T]) IsDisjoint(other Set[T]) bool {
	return isDisjoint[T](s, other)
}

func (s *OrderedSet[T]) Equal(other Set[T]) bool {
	return equal[T](s, other)
}
