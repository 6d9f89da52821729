package eviction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/lfu-cache/eviction"
)

// keys walks l from front to back.
func keys(a *eviction.Arena[string], l *eviction.List[string]) []string {
	var out []string
	for h, ok := l.Front(); ok; h, ok = l.Next(h) {
		out = append(out, a.Key(h))
	}
	return out
}

func TestListOrder(t *testing.T) {
	t.Parallel()

	a := eviction.NewArena[string](4)
	l := eviction.NewList(a)

	assert.True(t, l.Empty())
	_, ok := l.Back()
	assert.False(t, ok)
	_, ok = l.Front()
	assert.False(t, ok)

	ha := a.Alloc("a")
	hb := a.Alloc("b")
	hc := a.Alloc("c")
	l.PushFront(ha)
	l.PushFront(hb)
	l.PushFront(hc)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"c", "b", "a"}, keys(a, l))

	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, "a", a.Key(back))

	t.Run("remove middle", func(t *testing.T) {
		l.Remove(hb)
		assert.Equal(t, []string{"c", "a"}, keys(a, l))
	})

	t.Run("remove back", func(t *testing.T) {
		l.Remove(ha)
		assert.Equal(t, []string{"c"}, keys(a, l))
		back, ok := l.Back()
		require.True(t, ok)
		assert.Equal(t, hc, back)
	})

	t.Run("remove last", func(t *testing.T) {
		l.Remove(hc)
		assert.True(t, l.Empty())
		assert.Nil(t, keys(a, l))
	})
}

func TestNodeMovesBetweenLists(t *testing.T) {
	t.Parallel()

	a := eviction.NewArena[string](2)
	one := eviction.NewList(a)
	two := eviction.NewList(a)

	hx := a.Alloc("x")
	hy := a.Alloc("y")
	one.PushFront(hx)
	one.PushFront(hy)

	one.Remove(hx)
	two.PushFront(hx)

	assert.Equal(t, []string{"y"}, keys(a, one))
	assert.Equal(t, []string{"x"}, keys(a, two))
	assert.Equal(t, "x", a.Key(hx))
}

func TestArenaReusesFreedHandles(t *testing.T) {
	t.Parallel()

	a := eviction.NewArena[string](0)
	h1 := a.Alloc("one")
	h2 := a.Alloc("two")
	assert.NotEqual(t, eviction.Nil, h1)
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, a.Live())

	a.Free(h1)
	assert.Equal(t, 1, a.Live())
	assert.Equal(t, "", a.Key(h1))

	h3 := a.Alloc("three")
	assert.Equal(t, h1, h3)
	assert.Equal(t, "three", a.Key(h3))
	assert.Equal(t, "two", a.Key(h2))
	assert.Equal(t, 2, a.Live())
}
