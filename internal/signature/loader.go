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
	"bufio"
	"encoding/hex"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/errors"
)

const (
	commentPrefix = "#"
	fieldSep      = ";"
	numFields     = 3
	utf8BOM       = "\ufeff"
)

// ParseLine parses one database line of the form "ext;HEX;description".
// It returns ok=false with a nil error for blank and comment lines, and an
// INVALID_INPUT error for malformed records.
func ParseLine(line string) (sig Signature, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return Signature{}, false, nil
	}

	fields := strings.SplitN(line, fieldSep, numFields)
	if len(fields) != numFields {
		return Signature{}, false, errors.Newf(errors.CodeInvalidInput,
			"expected %d fields separated by %q, got %d", numFields, fieldSep, len(fields))
	}

	ext := strings.TrimSpace(fields[0])
	if ext == "" {
		return Signature{}, false, errors.New(errors.CodeInvalidInput, "empty extension")
	}
	if strings.ContainsAny(ext, `/\`) {
		return Signature{}, false, errors.Newf(errors.CodeInvalidInput, "extension %q contains a path separator", ext)
	}

	hexPattern := strings.TrimSpace(fields[1])
	if hexPattern == "" {
		return Signature{}, false, errors.New(errors.CodeInvalidInput, "empty pattern")
	}

	pattern, err := hex.DecodeString(hexPattern)
	if err != nil {
		return Signature{}, false, errors.Wrapf(err, errors.CodeInvalidInput, "invalid pattern %q", hexPattern)
	}

	return Signature{
		ext:     ext,
		pattern: pattern,
		desc:    strings.TrimSpace(fields[2]),
	}, true, nil
}

// Load reads a signature database from r. Malformed lines are logged and
// skipped. A read error stops loading and keeps the signatures parsed so far.
func Load(r io.Reader, log *slog.Logger) *Database {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var sigs []Signature

	br := bufio.NewReader(r)
	lineNum := 0
	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			lineNum++

			line = strings.TrimRight(line, "\r\n")
			if lineNum == 1 {
				line = strings.TrimPrefix(line, utf8BOM)
			}

			sig, ok, err := ParseLine(line)
			switch {
			case err != nil:
				log.Warn("skipping malformed signature", "line", lineNum, "err", err)
			case ok:
				sigs = append(sigs, sig)
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			log.Error("failed to read signature database", "line", lineNum+1, "err", readErr)
			break
		}
	}

	log.Info("signature database loaded", "count", len(sigs))
	return NewDatabase(sigs...)
}

// LoadFile loads the signature database stored at path in fsys.
// If the file cannot be opened the failure is logged and an empty database
// is returned, so that identification degrades to finding no match.
func LoadFile(fsys billy.Filesystem, path string, log *slog.Logger) *Database {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = errors.Wrap(err, errors.CodeNotFound, "signature database not found")
		}
		log.Error("unable to load signature database", "path", path, "err", err)
		return NewDatabase()
	}
	defer f.Close()

	return Load(f, log.With("path", path))
}
