package cmd

import (
	"fmt"
	"io"

	"github.com/ostafen/restorext/internal/env"
	"github.com/spf13/cobra"
)

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			PrintLogo(cmd.OutOrStdout())
		},
	}
}

func PrintLogo(w io.Writer) {
	fmt.Fprintln(w, "                 _                      _   ")
	fmt.Fprintln(w, " _ __ ___  ___ | |_ ___  _ __ _____  _| |_ ")
	fmt.Fprintln(w, "| '__/ _ \\/ __|| __/ _ \\| '__/ _ \\ \\/ / __|")
	fmt.Fprintln(w, "| | |  __/\\__ \\| || (_) | | |  __/>  <| |_ ")
	fmt.Fprintln(w, "|_|  \\___||___/ \\__\\___/|_|  \\___/_/\\_\\\\__|")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "File extension recovery tool")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Version:    %s\n", env.Version)
	fmt.Fprintf(w, "Commit:     %s\n", env.CommitHash)
	fmt.Fprintf(w, "Build Time: %s\n", env.BuildTime)
}
