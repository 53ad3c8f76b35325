package pset

import (
	"iter"
	"maps"

	"github.com/denismitr/pset/persistent"
	"github.com/denismitr/pset/set"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type (
	// Set is a mutable set of T that reports its mutations to a persistence
	// sink. It never shares its backing collection with another Set.
	Set[T comparable] struct {
		persistent.Base
		_    [0]func()
		data set.Set[T]
	}

	Option func(cfg *config)

	config struct {
		sink    persistent.Sink
		ordered bool
	}
)

var _ persistent.Object = (*Set[int])(nil)

// WithSink registers the new set with sink and reports every mutation to it.
func WithSink(sink persistent.Sink) Option {
	return func(cfg *config) {
		cfg.sink = sink
	}
}

// Ordered backs the new set with a set.OrderedSet.
func Ordered() Option {
	return func(cfg *config) {
		cfg.ordered = true
	}
}

func newConfig(options []Option) config {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

func newBacking[T comparable](cfg config) set.Set[T] {
	if cfg.ordered {
		return set.NewOrderedSet[T]()
	}
	return set.NewHashSet[T]()
}

func attach[T comparable](cfg config, data set.Set[T]) *Set[T] {
	s := &Set[T]{data: data}
	s.Attach(s, cfg.sink)
	return s
}

// New creates an empty set.
func New[T comparable](options ...Option) *Set[T] {
	cfg := newConfig(options)
	return attach(cfg, newBacking[T](cfg))
}

// Of creates an unattached hash backed set holding items.
func Of[T comparable](items ...T) *Set[T] {
	return &Set[T]{data: set.NewHashSetFrom(items...)}
}

// From builds a set from src, which may be a []T, map[T]struct{},
// iter.Seq[T] or any Operand[T]. Elements are always copied.
func From[T comparable](src any, options ...Option) (*Set[T], error) {
	cfg := newConfig(options)
	data := newBacking[T](cfg)

	switch v := src.(type) {
	case nil:
		return nil, errors.Wrapf(ErrInvalidArgument, "cannot build %s from nil", setTypeName[T]())
	case []T:
		for _, item := range v {
			data.Insert(item)
		}
	case map[T]struct{}:
		for item := range maps.Keys(v) {
			data.Insert(item)
		}
	case iter.Seq[T]:
		for item := range v {
			data.Insert(item)
		}
	case func(yield func(T) bool):
		for item := range v {
			data.Insert(item)
		}
	case Operand[T]:
		if isNil(v) {
			return nil, errors.Wrapf(ErrInvalidArgument, "cannot build %s from nil %T", setTypeName[T](), src)
		}
		for item := range v.All() {
			data.Insert(item)
		}
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "cannot build %s from %T", setTypeName[T](), src)
	}

	return attach(cfg, data), nil
}

// Sorted returns the elements of s in ascending order
func Sorted[T constraints.Ordered](s *Set[T]) []T {
	return set.Sorted(s.data)
}

func (s *Set[T]) wrap(data set.Set[T]) *Set[T] {
	return &Set[T]{data: data}
}

// Copy returns an unattached snapshot of s.
func (s *Set[T]) Copy() *Set[T] {
	return s.wrap(s.data.Clone())
}

// Hash always fails: a Set is mutable.
func (s *Set[T]) Hash() (uint64, error) {
	return 0, errors.Wrapf(ErrNotHashable, "%s", setTypeName[T]())
}
