package orderedmap

import (
	"github.com/denismitr/dll"
)

type (
	Pair[K comparable, V any] struct {
		Key   K
		Value V
	}

	OrderedMap[K comparable, V any] struct {
		m    map[K]*dll.Element[Pair[K, V]]
		list *dll.DoublyLinkedList[Pair[K, V]]
	}

	ForEachFn[K comparable, V any] func(key K, value V, order int)
)

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]*dll.Element[Pair[K, V]]),
		list: dll.New[Pair[K, V]](),
	}
}

// SetNX keeps the existing value and position when key is already present
func (om *OrderedMap[K, V]) SetNX(key K, value V) (added bool) {
	if _, found := om.m[key]; found {
		return false
	}

	newEl := dll.NewElement(Pair[K, V]{Key: key, Value: value})
	om.m[key] = newEl
	om.list.PushTail(newEl)
	return true
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.m)
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	curr := om.list.Head()
	order := 0
	for curr != nil {
		f(curr.Value().Key, curr.Value().Value, order)
		curr = curr.Next()
		order++
	}
}

// Keys returns the keys in insertion order
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.m))
	om.ForEach(func(key K, _ V, _ int) {
		keys = append(keys, key)
	})
	return keys
}

func (om *OrderedMap[K, V]) Clear() {
	om.m = make(map[K]*dll.Element[Pair[K, V]])
	om.list = dll.New[Pair[K, V]]()
}
