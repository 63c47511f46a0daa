// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package table

import "iter"

// TableSize is the size of the marker table, one slot per uint16 hash.
const TableSize = 1 << 16

const (
	// none means no stored key has a prefix hashing to the slot.
	none = iota
	// prefixMarker means some stored key has a proper prefix hashing to the slot.
	prefixMarker
	// keyMarker means some stored key hashes to the slot.
	keyMarker
)

// PrefixTable stores values under byte-string keys and answers which of the
// stored keys are prefixes of a given input.
//
// Every prefix of an inserted key is marked in a fixed table indexed by a
// rolling uint16 hash. The input is walked byte by byte and the walk stops at the
// first prefix whose slot is unmarked, since no stored key can extend it.
// Hash collisions only cost a map lookup.
type PrefixTable[T any] struct {
	marks     [TableSize]byte
	elems     map[string]T
	maxKeyLen int
}

func New[T any]() *PrefixTable[T] {
	return &PrefixTable[T]{
		elems: make(map[string]T),
	}
}

func step(h uint16, b byte) uint16 {
	return (h << 2) + uint16(b)
}

// Insert stores v under key, replacing any previous value.
// Empty keys are ignored.
func (t *PrefixTable[T]) Insert(key []byte, v T) {
	if len(key) == 0 {
		return
	}

	var h uint16
	for _, b := range key {
		h = step(h, b)
		t.marks[h] = max(t.marks[h], prefixMarker)
	}
	t.marks[h] = keyMarker
	t.elems[string(key)] = v
	t.maxKeyLen = max(t.maxKeyLen, len(key))
}

func (t *PrefixTable[T]) Get(key []byte) (T, bool) {
	v, found := t.elems[string(key)]
	return v, found
}

// Prefixes yields the length and value of every stored key which is a prefix
// of data, shortest first.
func (t *PrefixTable[T]) Prefixes(data []byte) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if len(t.elems) == 0 {
			return
		}

		var h uint16
		for i, b := range data[:min(len(data), t.maxKeyLen)] {
			h = step(h, b)

			switch t.marks[h] {
			case none:
				return
			case keyMarker:
				v, ok := t.elems[string(data[:i+1])]
				if ok && !yield(i+1, v) {
					return
				}
			}
		}
	}
}

// Longest returns the longest stored key which is a prefix of data.
func (t *PrefixTable[T]) Longest(data []byte) (n int, v T, found bool) {
	for l, x := range t.Prefixes(data) {
		n, v, found = l, x, true
	}
	return n, v, found
}

// Len returns the number of stored keys.
func (t *PrefixTable[T]) Len() int {
	return len(t.elems)
}
