package pset

import (
	"iter"

	"github.com/denismitr/pset/set"
	"github.com/pkg/errors"
)

type operator uint8

const (
	opAnd operator = iota
	opOr
	opSub
	opXor
)

func (op operator) String() string {
	return [...]string{"&", "|", "-", "^"}[op]
}

func forward[T comparable](op operator, left, right set.Set[T]) set.Set[T] {
	switch op {
	case opAnd:
		return left.Intersection(right)
	case opOr:
		return left.Union(right)
	case opSub:
		return left.Difference(right)
	default:
		return left.SymmetricDifference(right)
	}
}

// reflected computes other OP s when s can do it natively.
func reflected[T comparable](op operator, s, other set.Set[T]) (set.Set[T], bool) {
	r, ok := s.(set.Reflected[T])
	if !ok {
		return nil, false
	}

	switch op {
	case opAnd:
		return r.ReflectedIntersection(other), true
	case opOr:
		return r.ReflectedUnion(other), true
	case opSub:
		return r.ReflectedDifference(other), true
	default:
		return r.ReflectedSymmetricDifference(other), true
	}
}

func inPlace[T comparable](op operator, s, other set.Set[T]) {
	switch op {
	case opAnd:
		s.IntersectionUpdate(other)
	case opOr:
		s.InsertSet(other)
	case opSub:
		s.DifferenceUpdate(other)
	default:
		s.SymmetricDifferenceUpdate(other)
	}
}

// stripSet is strip for operators, which only take sets.
func stripSet[T comparable](symbol string, other Operand[T]) (set.Set[T], error) {
	raw, kind := strip(other)
	if kind == iterableOperand {
		return nil, errors.Wrapf(ErrUnsupported, "%s %s %T", setTypeName[T](), symbol, other)
	}
	return raw, nil
}

func (s *Set[T]) Contains(item T) bool {
	return s.data.Has(item)
}

func (s *Set[T]) All() iter.Seq[T] {
	return s.data.All()
}

func (s *Set[T]) Items() []T {
	return s.data.Items()
}

func (s *Set[T]) Len() int {
	return s.data.Len()
}

// Equal reports whether other is a set with the same elements.
// Plain iterables are never equal to a Set.
func (s *Set[T]) Equal(other Operand[T]) bool {
	raw, kind := strip(other)
	if kind == iterableOperand {
		return false
	}
	return s.data.Equal(raw)
}

func (s *Set[T]) NotEqual(other Operand[T]) bool {
	return !s.Equal(other)
}

func (s *Set[T]) IsSubset(other Operand[T]) bool {
	return s.data.IsSubset(materialize(other))
}

func (s *Set[T]) IsSuperset(other Operand[T]) bool {
	return s.data.IsSuperset(materialize(other))
}

// IsProperSubset is s < other. Like the operators it only takes sets.
func (s *Set[T]) IsProperSubset(other Operand[T]) (bool, error) {
	raw, err := stripSet("<", other)
	if err != nil {
		return false, err
	}
	return s.data.Len() < raw.Len() && s.data.IsSubset(raw), nil
}

// IsProperSuperset is s > other. Like the operators it only takes sets.
func (s *Set[T]) IsProperSuperset(other Operand[T]) (bool, error) {
	raw, err := stripSet(">", other)
	if err != nil {
		return false, err
	}
	return s.data.Len() > raw.Len() && s.data.IsSuperset(raw), nil
}

func (s *Set[T]) output(others []Operand[T], op operator) *Set[T] {
	result := s.data.Clone()
	for _, other := range others {
		result = forward(op, result, materialize(other))
	}
	return s.wrap(result)
}

// Union returns a new set with the elements of s and all others.
func (s *Set[T]) Union(others ...Operand[T]) *Set[T] {
	return s.output(others, opOr)
}

// Intersection returns a new set with the elements common to s and all others.
func (s *Set[T]) Intersection(others ...Operand[T]) *Set[T] {
	return s.output(others, opAnd)
}

// Difference returns a new set with the elements of s that are in none of others.
func (s *Set[T]) Difference(others ...Operand[T]) *Set[T] {
	return s.output(others, opSub)
}

func (s *Set[T]) SymmetricDifference(other Operand[T]) *Set[T] {
	return s.wrap(s.data.SymmetricDifference(materialize(other)))
}

func (s *Set[T]) IsDisjoint(other Operand[T]) bool {
	return s.data.IsDisjoint(materialize(other))
}

func (s *Set[T]) binary(op operator, other Operand[T]) (*Set[T], error) {
	raw, err := stripSet(op.String(), other)
	if err != nil {
		return nil, err
	}
	return s.wrap(forward(op, s.data, raw)), nil
}

func (s *Set[T]) reflectedBinary(op operator, other Operand[T]) (*Set[T], error) {
	raw, err := stripSet(op.String(), other)
	if err != nil {
		return nil, err
	}

	if result, ok := reflected(op, s.data, raw); ok {
		return s.wrap(result), nil
	}

	// no reflected form on the backing collection, swap operands instead
	return s.wrap(forward(op, raw, s.data)), nil
}

// And returns s & other.
func (s *Set[T]) And(other Operand[T]) (*Set[T], error) {
	return s.binary(opAnd, other)
}

// Or returns s | other.
func (s *Set[T]) Or(other Operand[T]) (*Set[T], error) {
	return s.binary(opOr, other)
}

// Sub returns s - other.
func (s *Set[T]) Sub(other Operand[T]) (*Set[T], error) {
	return s.binary(opSub, other)
}

// Xor returns s ^ other.
func (s *Set[T]) Xor(other Operand[T]) (*Set[T], error) {
	return s.binary(opXor, other)
}

// RAnd returns other & s.
func (s *Set[T]) RAnd(other Operand[T]) (*Set[T], error) {
	return s.reflectedBinary(opAnd, other)
}

// ROr returns other | s.
func (s *Set[T]) ROr(other Operand[T]) (*Set[T], error) {
	return s.reflectedBinary(opOr, other)
}

// RSub returns other - s.
func (s *Set[T]) RSub(other Operand[T]) (*Set[T], error) {
	return s.reflectedBinary(opSub, other)
}

// RXor returns other ^ s.
func (s *Set[T]) RXor(other Operand[T]) (*Set[T], error) {
	return s.reflectedBinary(opXor, other)
}

// Add reports whether item was not yet in s.
func (s *Set[T]) Add(item T) (modified bool) {
	modified = s.data.Insert(item)
	s.MarkChanged()
	return modified
}

// Discard removes item if present and reports whether it was.
func (s *Set[T]) Discard(item T) (removed bool) {
	removed = s.data.Remove(item)
	s.MarkChanged()
	return removed
}

// Remove fails with ErrNotFound when item is not in s.
func (s *Set[T]) Remove(item T) error {
	if !s.data.Remove(item) {
		return errors.Wrapf(ErrNotFound, "remove %#v", item)
	}

	s.MarkChanged()
	return nil
}

// Pop removes and returns an element, failing with ErrNotFound when s is empty.
func (s *Set[T]) Pop() (T, error) {
	item, err := s.data.Pop()
	if err != nil {
		return item, err
	}

	s.MarkChanged()
	return item, nil
}

func (s *Set[T]) Clear() {
	s.data.Clear()
	s.MarkChanged()
}

func (s *Set[T]) Update(others ...Operand[T]) {
	s.updateEach(others, opOr)
}

func (s *Set[T]) IntersectionUpdate(others ...Operand[T]) {
	s.updateEach(others, opAnd)
}

func (s *Set[T]) DifferenceUpdate(others ...Operand[T]) {
	s.updateEach(others, opSub)
}

func (s *Set[T]) SymmetricDifferenceUpdate(other Operand[T]) {
	s.updateEach([]Operand[T]{other}, opXor)
}

func (s *Set[T]) updateEach(others []Operand[T], op operator) {
	for _, other := range others {
		inPlace(op, s.data, materialize(other))
	}
	s.MarkChanged()
}

func (s *Set[T]) inPlaceOperator(op operator, other Operand[T]) (*Set[T], error) {
	raw, err := stripSet(op.String()+"=", other)
	if err != nil {
		return nil, err
	}

	inPlace(op, s.data, raw)
	s.MarkChanged()
	return s, nil
}

// IAnd is s &= other.
func (s *Set[T]) IAnd(other Operand[T]) (*Set[T], error) {
	return s.inPlaceOperator(opAnd, other)
}

// IOr is s |= other.
func (s *Set[T]) IOr(other Operand[T]) (*Set[T], error) {
	return s.inPlaceOperator(opOr, other)
}

// ISub is s -= other.
func (s *Set[T]) ISub(other Operand[T]) (*Set[T], error) {
	return s.inPlaceOperator(opSub, other)
}

// IXor is s ^= other.
func (s *Set[T]) IXor(other Operand[T]) (*Set[T], error) {
	return s.inPlaceOperator(opXor, other)
}
