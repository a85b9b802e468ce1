// Package strhash provides hash functions over string keys, usable as a
// hashtable.HashFn.
package strhash

import "hash/fnv"

// Djb2 hashes key byte by byte in the djb2 style.
func Djb2(key string) uint64 {
	// https://stackoverflow.com/questions/7666509/hash-function-for-string
	// djb2 but multiply by 17000069 rather than 33
	var h = uint64(5381)
	k := uint64(17000069)
	for i := 0; i < len(key); i++ {
		h = (h * k) + uint64(key[i])
	}
	return h
}

// Fnv64a hashes key with 64-bit FNV-1a.
func Fnv64a(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}

// Length hashes a key by its length alone, so every pair of equal-length
// keys collides. Useful for exercising collision handling in tests and for
// nothing else.
func Length(key string) uint64 {
	return uint64(len(key))
}
