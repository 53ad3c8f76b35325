package pset

import (
	"iter"
	"slices"

	"github.com/denismitr/pset/set"
)

// Operand is anything that can be iterated as a set of T.
// *Set, every set.Set and Elements are operands.
type Operand[T comparable] interface {
	All() iter.Seq[T]
}

// Elements is a plain slice operand.
type Elements[T comparable] []T

func (e Elements[T]) All() iter.Seq[T] {
	return slices.Values(e)
}

type operandKind uint8

const (
	iterableOperand operandKind = iota
	rawOperand
	wrappedOperand
)

// isNil reports whether o is nil or a nil pointer to a known collection.
func isNil[T comparable](o Operand[T]) bool {
	switch v := o.(type) {
	case nil:
		return true
	case *Set[T]:
		return v == nil
	case *set.HashSet[T]:
		return v == nil
	case *set.OrderedSet[T]:
		return v == nil
	default:
		return false
	}
}

// strip resolves o to a backing collection. Plain iterables and nil
// operands have none.
func strip[T comparable](o Operand[T]) (set.Set[T], operandKind) {
	if isNil(o) {
		return nil, iterableOperand
	}

	switch v := o.(type) {
	case *Set[T]:
		return v.data, wrappedOperand
	case set.Set[T]:
		return v, rawOperand
	default:
		return nil, iterableOperand
	}
}

// materialize is strip that also accepts plain iterables by collecting them.
// A nil operand is empty.
func materialize[T comparable](o Operand[T]) set.Set[T] {
	if raw, kind := strip(o); kind != iterableOperand {
		return raw
	}

	result := set.NewHashSet[T]()
	if isNil(o) {
		return result
	}

	for item := range o.All() {
		result.Insert(item)
	}
	return result
}
