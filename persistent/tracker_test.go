package persistent_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/denismitr/pset/persistent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	persistent.Base
	name string
}

func newRecord(name string, sink persistent.Sink) *record {
	r := &record{name: name}
	r.Attach(r, sink)
	return r
}

func (r *record) Rename(name string) {
	r.name = name
	r.MarkChanged()
}

func TestBase(t *testing.T) {
	t.Run("unattached object tracks the flag locally", func(t *testing.T) {
		r := newRecord("foo", nil)
		assert.False(t, r.Changed())

		r.Rename("bar")
		assert.True(t, r.Changed())

		r.SetChanged(false)
		assert.False(t, r.Changed())
		assert.False(t, r.Attached())
	})

	t.Run("second attach is ignored", func(t *testing.T) {
		first := persistent.NewTracker()
		second := persistent.NewTracker()

		r := newRecord("foo", first)
		r.Attach(r, second)
		r.Rename("bar")

		assert.True(t, r.Attached())
		assert.Equal(t, 1, first.Registered())
		assert.Equal(t, 0, second.Registered())
		assert.Equal(t, []persistent.Object{r}, first.Dirty())
		assert.Empty(t, second.Dirty())
	})
}

func TestTracker(t *testing.T) {
	t.Run("registers on attach", func(t *testing.T) {
		tracker := persistent.NewTracker()
		newRecord("foo", tracker)
		newRecord("bar", tracker)

		assert.Equal(t, 2, tracker.Registered())
		assert.Empty(t, tracker.Dirty())
	})

	t.Run("dirty objects in first change order without duplicates", func(t *testing.T) {
		tracker := persistent.NewTracker()
		foo := newRecord("foo", tracker)
		bar := newRecord("bar", tracker)

		bar.Rename("bar2")
		foo.Rename("foo2")
		bar.Rename("bar3")

		assert.Equal(t, []persistent.Object{bar, foo}, tracker.Dirty())
	})

	t.Run("drain resets flags", func(t *testing.T) {
		tracker := persistent.NewTracker()
		foo := newRecord("foo", tracker)
		foo.Rename("foo2")

		drained := tracker.Drain()
		require.Len(t, drained, 1)
		assert.Same(t, foo, drained[0])
		assert.False(t, foo.Changed())
		assert.Empty(t, tracker.Dirty())

		foo.Rename("foo3")
		assert.Equal(t, []persistent.Object{foo}, tracker.Dirty())
	})

	t.Run("logs through the given logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		tracker := persistent.NewTracker(persistent.WithLogger(logger))
		newRecord("foo", tracker).Rename("bar")

		assert.Contains(t, buf.String(), "register persistent object")
		assert.Contains(t, buf.String(), "persistent object changed")
		assert.Contains(t, buf.String(), "*persistent_test.record")
	})
}

func TestTracker_Concurrent(t *testing.T) {
	t.Run("objects reporting from many goroutines", func(t *testing.T) {
		const N = 100

		tracker := persistent.NewTracker()
		records := make([]*record, N)
		for i := range records {
			records[i] = newRecord(fmt.Sprintf("record_%d", i), tracker)
		}

		var wg sync.WaitGroup
		for _, r := range records {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r.Rename(r.name + "_renamed")
				r.Rename(r.name + "_again")
			}()
		}
		wg.Wait()

		assert.Equal(t, N, tracker.Registered())

		drained := tracker.Drain()
		require.Len(t, drained, N)
		for _, r := range records {
			assert.False(t, r.Changed(), r.name)
		}
		assert.Empty(t, tracker.Dirty())
	})
}
