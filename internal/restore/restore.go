// Package restore renames a file so that its extension matches its detected type.
package restore

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/errors"
)

// TargetName replaces the extension of the file name with ext, or appends it
// if the name has none. A leading dot does not start an extension.
func TargetName(name, ext string) string {
	base := name
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		base = name[:i]
	}
	return base + "." + ext
}

// TargetPath returns path with its base name rewritten by TargetName.
func TargetPath(path, ext string) string {
	return filepath.Join(filepath.Dir(path), TargetName(filepath.Base(path), ext))
}

// Restore renames the file at path in fsys to carry the extension ext and
// returns the new path. An existing target is never overwritten.
func Restore(fsys billy.Filesystem, path, ext string) (string, error) {
	target := fsys.Join(filepath.Dir(path), TargetName(filepath.Base(path), ext))
	if target == filepath.Clean(path) {
		return target, nil
	}

	_, err := fsys.Stat(target)
	switch {
	case err == nil:
		return "", renameError(errors.New(errors.CodeAlreadyExists, "target file already exists"), path, target)
	case !errors.Is(err, fs.ErrNotExist):
		return "", renameError(errors.Wrap(err, errors.CodeInternal, "unable to check target file"), path, target)
	}

	if err := fsys.Rename(path, target); err != nil {
		code := errors.CodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = errors.CodeNotFound
		}
		return "", renameError(errors.Wrap(err, code, "failed to rename file"), path, target)
	}
	return target, nil
}

func renameError(err error, source, target string) error {
	return errors.WithContextMap(err, map[string]interface{}{
		"source": source,
		"target": target,
	})
}
