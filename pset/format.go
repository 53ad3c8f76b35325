package pset

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/denismitr/pset/set"
)

func elemTypeName[T comparable]() string {
	return reflect.TypeFor[T]().String()
}

func setTypeName[T comparable]() string {
	return "pset.Set[" + elemTypeName[T]() + "]"
}

// String renders s as the call that would build an equal set:
// pset.Of[int](1, 2, 3) sorted by the rendered elements, or
// pset.From[int]([]int{3, 1}, pset.Ordered()) in insertion order for
// ordered sets. It is meant for diagnostics, not for serialization.
func (s *Set[T]) String() string {
	items := make([]string, 0, s.data.Len())
	for item := range s.data.All() {
		items = append(items, fmt.Sprintf("%#v", item))
	}

	elem := elemTypeName[T]()
	var b strings.Builder

	if _, ordered := s.data.(*set.OrderedSet[T]); ordered {
		b.WriteString("pset.From[")
		b.WriteString(elem)
		b.WriteString("]([]")
		b.WriteString(elem)
		b.WriteString("{")
		b.WriteString(strings.Join(items, ", "))
		b.WriteString("}, pset.Ordered())")
		return b.String()
	}

	slices.Sort(items)
	b.WriteString("pset.Of[")
	b.WriteString(elem)
	b.WriteString("](")
	b.WriteString(strings.Join(items, ", "))
	b.WriteString(")")
	return b.String()
}

func (s *Set[T]) GoString() string {
	return s.String()
}
