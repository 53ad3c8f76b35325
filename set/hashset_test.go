package set_test

import (
	"sort"
	"testing"

	"github.com/denismitr/pset/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.NewHashSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		assert.True(t, s.Remove("bar"))

		items := s.Items()
		sort.Strings(items)

		assert.Equal(t, []string{"123", "baz", "foo"}, items)
	})

	t.Run("remove missing item", func(t *testing.T) {
		s := set.NewHashSetFrom("foo", "bar")

		assert.False(t, s.Remove("baz"))
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Has("foo"))
		assert.True(t, s.Has("bar"))
	})
}

func TestHashSet_Pop(t *testing.T) {
	t.Run("pop drains the set", func(t *testing.T) {
		s := set.NewHashSetFrom(1, 2, 3)

		var popped []int
		for s.Len() > 0 {
			item, err := s.Pop()
			require.NoError(t, err)
			popped = append(popped, item)
		}

		sort.Ints(popped)
		assert.Equal(t, []int{1, 2, 3}, popped)
	})

	t.Run("pop from an empty set", func(t *testing.T) {
		s := set.NewHashSet[int]()

		item, err := s.Pop()
		assert.ErrorIs(t, err, set.ErrNotFound)
		assert.Equal(t, 0, item)
	})
}

func TestHashSet_Reflected(t *testing.T) {
	a := set.NewHashSetFrom(1, 2, 3)
	b := set.NewOrderedSetFrom(2, 3, 4)

	assert.Equal(t, []int{4}, set.Sorted(a.ReflectedDifference(b)))
	assert.Equal(t, []int{2, 3}, set.Sorted(a.ReflectedIntersection(b)))
	assert.Equal(t, []int{1, 2, 3, 4}, set.Sorted(a.ReflectedUnion(b)))
	assert.Equal(t, []int{1, 4}, set.Sorted(a.ReflectedSymmetricDifference(b)))

	assert.Equal(t, []int{1, 2, 3}, set.Sorted[int](a), "receiver must not change")
	assert.Equal(t, []int{2, 3, 4}, b.Items(), "operand must not change")
}

func TestHashSet_Clone(t *testing.T) {
	s := set.NewHashSetFrom(1, 2)
	clone := s.Clone()

	clone.Insert(3)

	assert.False(t, s.Has(3))
	assert.True(t, clone.Has(3))
	assert.IsType(t, &set.HashSet[int]{}, clone)
}
