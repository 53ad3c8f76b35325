package persistent

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/denismitr/pset/orderedmap"
)

type (
	// Tracker is an in-memory Sink. It remembers registered objects and the
	// objects changed since the last Drain, in first-change order.
	// Different objects may report from different goroutines.
	Tracker struct {
		mux        sync.Mutex
		registered *orderedmap.OrderedMap[Object, struct{}]
		dirty      *orderedmap.OrderedMap[Object, struct{}]
		logger     *slog.Logger
	}

	TrackerOption func(t *Tracker)
)

var _ Sink = (*Tracker)(nil)

func WithLogger(logger *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

func NewTracker(options ...TrackerOption) *Tracker {
	t := &Tracker{
		registered: orderedmap.NewOrderedMap[Object, struct{}](),
		dirty:      orderedmap.NewOrderedMap[Object, struct{}](),
		logger:     slog.Default(),
	}

	for _, opt := range options {
		opt(t)
	}

	return t
}

func (t *Tracker) Register(obj Object) {
	t.mux.Lock()
	defer t.mux.Unlock()

	if t.registered.SetNX(obj, struct{}{}) {
		t.logger.Debug("register persistent object", "type", fmt.Sprintf("%T", obj))
	}
}

func (t *Tracker) Changed(obj Object) {
	t.mux.Lock()
	defer t.mux.Unlock()

	if t.dirty.SetNX(obj, struct{}{}) {
		t.logger.Debug("persistent object changed", "type", fmt.Sprintf("%T", obj), "dirty", t.dirty.Len())
	}
}

func (t *Tracker) Registered() int {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.registered.Len()
}

// Dirty lists the objects changed since the last Drain
func (t *Tracker) Dirty() []Object {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.dirtyObjects()
}

// Drain returns the changed objects and resets their flags.
// Objects must not be mutated while Drain runs.
func (t *Tracker) Drain() []Object {
	t.mux.Lock()
	defer t.mux.Unlock()

	objects := t.dirtyObjects()
	t.dirty.Clear()

	// SetChanged(false) never calls back into the tracker
	for _, obj := range objects {
		obj.SetChanged(false)
	}

	t.logger.Debug("drained persistent objects", "count", len(objects))
	return objects
}

func (t *Tracker) dirtyObjects() []Object {
	return t.dirty.Keys()
}
