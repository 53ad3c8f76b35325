// Package persistent is the narrow contract between persistent objects and
// whatever persistence manager flushes them.
package persistent

// Object is anything carrying a transient changed flag.
type Object interface {
	Changed() bool
	SetChanged(changed bool)
}

// Sink receives objects on construction and every time they are mutated.
type Sink interface {
	Register(obj Object)
	Changed(obj Object)
}

// Base is embedded by persistent types. The zero value is usable and
// unattached: the flag is tracked locally and nobody is notified.
type Base struct {
	self    Object
	sink    Sink
	changed bool
}

// Attach registers self with sink. self is normally the value embedding b.
// An object is attached at most once, later calls are ignored.
func (b *Base) Attach(self Object, sink Sink) {
	if sink == nil || b.sink != nil {
		return
	}

	b.self = self
	b.sink = sink
	sink.Register(self)
}

func (b *Base) Attached() bool {
	return b.sink != nil
}

func (b *Base) Changed() bool {
	return b.changed
}

// SetChanged sets the flag; only raising it reaches the sink.
func (b *Base) SetChanged(changed bool) {
	b.changed = changed
	if changed && b.sink != nil {
		b.sink.Changed(b.self)
	}
}

func (b *Base) MarkChanged() {
	b.SetChanged(true)
}
