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
	"github.com/ostafen/restorext/internal/env"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const AppName = env.AppName

func Execute() error {
	return DefineRootCommand().Execute()
}

// DefineRootCommand builds the command tree. Each call binds a fresh
// configuration, so commands can be built and run repeatedly in tests.
func DefineRootCommand() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   AppName + " <file>",
		Short: AppName + " - restore file extensions from magic numbers",
		Long: `Detects the type of a file by comparing its first bytes with a database of known
signatures, then renames the file so that its extension matches the detected type.
When several extensions share the best signature you are asked to pick one.`,
		Args: requireFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunIdentify(cmd, v, args)
		},
	}

	defineConfigFlags(rootCmd, v)

	rootCmd.AddCommand(
		DefineSignaturesCommand(v),
		DefineVersionCommand(),
	)
	return rootCmd
}
