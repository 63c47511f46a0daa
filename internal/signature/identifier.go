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
	"io"
	"io/fs"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/errors"
	hostfs "github.com/ostafen/restorext/internal/fs"
)

// Identifier reads file headers through a filesystem and matches them against
// a signature database.
type Identifier struct {
	db  *Database
	fs  billy.Filesystem
	log *slog.Logger
}

type Option func(*Identifier)

// WithFilesystem sets the filesystem paths are resolved in.
// By default paths are host paths, relative ones resolved against the
// working directory.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(id *Identifier) {
		id.fs = fsys
	}
}

// WithLogger sets the diagnostic sink. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(id *Identifier) {
		id.log = log
	}
}

func NewIdentifier(db *Database, opts ...Option) *Identifier {
	id := &Identifier{
		db:  db,
		log: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(id)
	}
	return id
}

// Identify returns the distinct extensions tied for the longest signature
// matching the header of the file at path. The result is empty when the file
// does not exist, cannot be read or matches no signature.
func (id *Identifier) Identify(path string) []string {
	return id.IdentifyResult(path).Extensions
}

// IdentifyResult is like Identify but also reports the matched length.
func (id *Identifier) IdentifyResult(path string) MatchResult {
	log := id.log.With("path", path)

	fsys := id.fs
	if fsys == nil {
		fsys, path = hostfs.Resolve(path)
	}

	fi, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Error("file not found")
		return MatchResult{}
	}
	if err != nil {
		log.Error("unable to stat file", "err", err)
		return MatchResult{}
	}
	if fi.IsDir() {
		log.Error("not a regular file")
		return MatchResult{}
	}

	log.Debug("reading file header", "size", fi.Size())

	header, err := readHeader(fsys, path)
	if err != nil {
		log.Error("unable to read file", "err", err)
		return MatchResult{}
	}

	res := id.db.Match(header)
	if res.Empty() {
		log.Warn("no signature matched")
		return res
	}

	log.Info("best match", "len", res.Len, "extensions", res.Extensions)
	return res
}

func readHeader(fsys billy.Filesystem, path string) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}
