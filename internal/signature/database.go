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
package signature

import (
	"slices"

	"github.com/ostafen/restorext/pkg/table"
)

// Database is an immutable, ordered collection of signatures.
// It is safe for concurrent use.
type Database struct {
	sigs []Signature

	// index maps each distinct pattern to the distinct extensions sharing it,
	// in insertion order.
	index *table.PrefixTable[[]string]
}

// NewDatabase builds a database from sigs, preserving their order.
// Signatures with an empty pattern are kept for listing but never match.
func NewDatabase(sigs ...Signature) *Database {
	db := &Database{
		sigs:  make([]Signature, len(sigs)),
		index: table.New[[]string](),
	}

	for i, sig := range sigs {
		db.sigs[i] = New(sig.ext, sig.pattern, sig.desc)

		if sig.Len() == 0 {
			continue
		}

		exts, _ := db.index.Get(sig.pattern)
		if !slices.Contains(exts, sig.ext) {
			db.index.Insert(sig.pattern, append(exts, sig.ext))
		}
	}
	return db
}

// Signatures returns the signatures in insertion order.
func (db *Database) Signatures() []Signature {
	if db == nil {
		return nil
	}
	return slices.Clone(db.sigs)
}

func (db *Database) Len() int {
	if db == nil {
		return 0
	}
	return len(db.sigs)
}

// MatchResult holds the distinct extensions whose pattern is the longest
// prefix of a header, together with that pattern length.
type MatchResult struct {
	Extensions []string
	Len        int
}

func (r MatchResult) Empty() bool {
	return len(r.Extensions) == 0
}

// Match returns the extensions of the signatures whose pattern is a prefix of
// header and is longer than any other matching pattern. Shorter matches are
// discarded. All entries tied at the maximal length share the same pattern,
// so the result is exactly the extensions recorded under that pattern.
func (db *Database) Match(header []byte) MatchResult {
	if db == nil {
		return MatchResult{}
	}

	n, exts, found := db.index.Longest(header)
	if !found {
		return MatchResult{}
	}

	return MatchResult{
		Extensions: slices.Clone(exts),
		Len:        n,
	}
}
