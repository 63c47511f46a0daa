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
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// HeaderSize is the number of leading bytes of a file compared against the
// database.
const HeaderSize = 512

// Signature is a magic number expected at offset 0 of files of a given type.
// It is a value type: the pattern is copied in and out and never mutated.
type Signature struct {
	ext     string
	pattern []byte
	desc    string
}

func New(ext string, pattern []byte, desc string) Signature {
	return Signature{
		ext:     ext,
		pattern: bytes.Clone(pattern),
		desc:    desc,
	}
}

// Ext returns the file extension, without the leading dot.
func (s Signature) Ext() string {
	return s.ext
}

// Pattern returns a copy of the magic bytes.
func (s Signature) Pattern() []byte {
	return bytes.Clone(s.pattern)
}

func (s Signature) Description() string {
	return s.desc
}

// Len returns the length of the pattern.
func (s Signature) Len() int {
	return len(s.pattern)
}

// Matches reports whether the pattern is a prefix of header.
// A pattern longer than header never matches.
func (s Signature) Matches(header []byte) bool {
	return len(s.pattern) > 0 && bytes.HasPrefix(header, s.pattern)
}

func (s Signature) Equal(other Signature) bool {
	return s.ext == other.ext &&
		s.desc == other.desc &&
		bytes.Equal(s.pattern, other.pattern)
}

// String renders the signature as a database record.
func (s Signature) String() string {
	return fmt.Sprintf("%s;%s;%s", s.ext, strings.ToUpper(hex.EncodeToString(s.pattern)), s.desc)
}
