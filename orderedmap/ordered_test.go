package orderedmap_test

import (
	"fmt"
	"testing"

	"github.com/denismitr/pset/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap_Len(t *testing.T) {
	t.Run("after set nx", func(t *testing.T) {
		om := orderedmap.NewOrderedMap[string, int]()
		om.SetNX("foo", 1)
		om.SetNX("bar", 2)

		assert.Equal(t, 2, om.Len())

		om.SetNX("foo", 3)
		om.SetNX("baz", 123)

		assert.Equal(t, 3, om.Len())
	})
}

func TestOrderedMap_SetNX(t *testing.T) {
	t.Run("it will never override a value", func(t *testing.T) {
		const N = 1_000

		om := orderedmap.NewOrderedMap[string, int]()

		for i := 0; i < N; i++ {
			assert.True(t, om.SetNX(fmt.Sprintf("key_%d", i), i))
		}

		for i := 0; i < N; i++ {
			assert.False(t, om.SetNX(fmt.Sprintf("key_%d", i), i+N))
		}

		om.ForEach(func(key string, value int, order int) {
			assert.Equal(t, fmt.Sprintf("key_%d", order), key)
			assert.Equal(t, order, value)
		})
	})
}

func TestOrderedMap_Keys(t *testing.T) {
	t.Run("keys follow first insertion", func(t *testing.T) {
		om := orderedmap.NewOrderedMap[string, int]()
		om.SetNX("foo", 1)
		om.SetNX("bar", 2)
		om.SetNX("foo", 3)
		om.SetNX("baz", 4)

		require.Equal(t, 3, om.Len())
		assert.Equal(t, []string{"foo", "bar", "baz"}, om.Keys())
	})
}

func TestOrderedMap_Clear(t *testing.T) {
	om := orderedmap.NewOrderedMap[int, string]()
	om.SetNX(1, "one")
	om.SetNX(2, "two")

	om.Clear()

	assert.Equal(t, 0, om.Len())
	assert.Empty(t, om.Keys())
	assert.True(t, om.SetNX(1, "uno"), "cleared key can be set again")
}
