package cow_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"openaddr/cow"
	"openaddr/strhash"
)

func TestPutGet(t *testing.T) {
	assert := assert.New(t)

	m := cow.New[uint64](8, strhash.Fnv64a)
	_, ok := m.Get("1")
	assert.False(ok)

	m.Put("1", 10)
	v, ok := m.Get("1")
	assert.True(ok)
	assert.Equal(uint64(10), v)

	v, ok = m.Remove("1")
	assert.True(ok)
	assert.Equal(uint64(10), v)
	_, ok = m.Get("1")
	assert.False(ok)
}

func TestSnapshotReads(t *testing.T) {
	m := cow.New[uint64](8, strhash.Fnv64a)
	// Readers share snapshots while a writer swaps them out underneath;
	// checking that we don't panic or observe torn state
	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		for i := 0; i < 100; i++ {
			m.Put(strconv.Itoa(i), uint64(i))
		}
		wg.Done()
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			for i := 0; i < 100; i++ {
				v, ok := m.Get(strconv.Itoa(i))
				if ok {
					assert.Equal(t, uint64(i), v)
				}
			}
			wg.Done()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(100), m.Size())
}

func TestWritersSerialize(t *testing.T) {
	assert := assert.New(t)

	m := cow.New[uint64](8, strhash.Fnv64a)
	numWriters := 4
	perWriter := 25

	wg := &sync.WaitGroup{}
	for w := 0; w < numWriters; w++ {
		wg.Add(1)
		go func(w int) {
			for i := 0; i < perWriter; i++ {
				m.Put(strconv.Itoa(w*perWriter+i), uint64(w))
			}
			wg.Done()
		}(w)
	}
	wg.Wait()
	// no write may be lost to a concurrent clone-and-swap
	assert.Equal(uint64(numWriters*perWriter), m.Size())
}
