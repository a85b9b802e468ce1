package strhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.String().Draw(t, "key")
		assert.Equal(t, Djb2(key), Djb2(key))
		assert.Equal(t, Fnv64a(key), Fnv64a(key))
		assert.Equal(t, Length(key), Length(key))
	})
}

func TestSpreadsEqualLengthKeys(t *testing.T) {
	assert := assert.New(t)
	assert.NotEqual(Djb2("Jones"), Djb2("Smith"))
	assert.NotEqual(Fnv64a("Jones"), Fnv64a("Smith"))
}

func TestLengthCollides(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Length("Jones"), Length("Smith"))
	assert.Equal(uint64(0), Length(""))
}
