package memoize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"openaddr/strhash"
)

func TestMemoize(t *testing.T) {
	assert := assert.New(t)
	calls := 0
	m := New(func(x string) int {
		calls++
		return len(x) * len(x)
	}, strhash.Fnv64a)

	assert.Equal(9, m.Call("abc"))
	assert.Equal(9, m.Call("abc"))
	assert.Equal(1, calls, "second Call should hit the cache")

	assert.Equal(1, m.Call("a"))
	assert.Equal(4, m.Call("ab"))
	assert.Equal(1, m.Call("a"))
	assert.Equal(3, calls)
}

func TestMemoizeForget(t *testing.T) {
	assert := assert.New(t)
	calls := 0
	m := New(func(x string) int {
		calls++
		return len(x)
	}, strhash.Fnv64a)

	m.Call("abc")
	m.Forget("abc")
	m.Call("abc")
	assert.Equal(2, calls)
}

func TestMockMemoize(t *testing.T) {
	assert := assert.New(t)
	calls := 0
	m := NewMock(func(x string) int {
		calls++
		return len(x) * len(x)
	})
	assert.Equal(9, m.Call("abc"))
	assert.Equal(9, m.Call("abc"))
	assert.Equal(2, calls, "mock never caches")
}
