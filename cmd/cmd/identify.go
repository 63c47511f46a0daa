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
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/errors"
	"github.com/ostafen/restorext/internal/fs"
	"github.com/ostafen/restorext/internal/prompt"
	"github.com/ostafen/restorext/internal/restore"
	"github.com/ostafen/restorext/internal/signature"
	"github.com/ostafen/restorext/internal/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func requireFile(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errors.New(errors.CodeInvalidInput, "no file path given")
	case 1:
		return nil
	}
	return errors.Newf(errors.CodeInvalidInput, "expected a single file path, got %d arguments", len(args))
}

// RunIdentify detects the type of the file named by args[0] and restores its
// extension. Failing to detect the type or to rename the file is reported but
// is not an error.
func RunIdentify(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cmd.SilenceUsage = true

	s, err := newSession(cmd, v)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	filePath := args[0]
	fsys, path := fs.Resolve(filePath)

	id := signature.NewIdentifier(
		s.Database(),
		signature.WithFilesystem(fsys),
		signature.WithLogger(s.log),
	)

	exts := id.Identify(path)

	var ext string
	switch len(exts) {
	case 0:
		fmt.Fprintln(out, "Unable to determine the file type")
		return nil
	case 1:
		ext = exts[0]
		fmt.Fprintf(out, "Detected file extension: .%s\n", ext)
	default:
		items := make([]string, len(exts))
		for i, e := range exts {
			items[i] = "." + e
		}

		in := cmd.InOrStdin()
		p := prompt.New(in, out, errOut, isInteractive(in))

		idx, err := p.Choose("Multiple extensions found:", items)
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(out, "\nInput cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		ext = exts[idx]
	}

	target := restore.TargetPath(filePath, ext)
	if target == filepath.Clean(filePath) {
		fmt.Fprintln(out, "The file already has this extension")
		return nil
	}

	if s.cfg.DryRun {
		fmt.Fprintf(out, "Would rename to: %s\n", target)
		return nil
	}

	if _, err := restore.Restore(fsys, path, ext); err != nil {
		fmt.Fprintf(errOut, "E: unable to rename file: %v\n", err)
		return nil
	}

	fmt.Fprintf(out, "File restored: %s\n", target)
	return nil
}

func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(f)
}
